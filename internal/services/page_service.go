package services

import (
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/page"
)

// PageService builds portfolio pages and applies user actions to them
type PageService struct {
	projects *ProjectService
	filter   *CategoryFilter
}

// NewPageService creates a new PageService
func NewPageService(ps *ProjectService, cf *CategoryFilter) *PageService {
	return &PageService{projects: ps, filter: cf}
}

// Build returns a fresh page. A non-empty filter is selected and a
// non-empty query is passed to the search trigger.
func (s *PageService) Build(filter, query string) *page.Page {
	p := page.New(s.projects.GetAll(), s.projects.FilterTags())
	p.SearchInput = query

	NewSearchTrigger(p).Activate(query)
	if filter != "" {
		s.filter.Select(p, filter)
	}
	return p
}

// Tags returns the filter tags shown on every page
func (s *PageService) Tags() []string {
	return s.projects.FilterTags()
}

// Catalog returns the catalog rendered by the filter
func (s *PageService) Catalog() models.Catalog {
	return s.filter.Catalog()
}
