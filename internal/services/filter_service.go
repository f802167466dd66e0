package services

import (
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/page"
)

// CategoryFilter repopulates the PDF list of a page from a fixed catalog
type CategoryFilter struct {
	catalog models.Catalog
}

// NewCategoryFilter creates a new CategoryFilter over its own copy of catalog
func NewCategoryFilter(catalog models.Catalog) *CategoryFilter {
	return &CategoryFilter{catalog: catalog.Clone()}
}

// Catalog returns a copy of the catalog the filter renders
func (f *CategoryFilter) Catalog() models.Catalog {
	return f.catalog.Clone()
}

// Select activates the control carrying tag, replaces the page results and
// renders the whole catalog once for every matching project.
// Returns the number of rendered items.
func (f *CategoryFilter) Select(p *page.Page, tag string) int {
	selected := false
	for i := range p.Controls {
		active := !selected && p.Controls[i].Tag == tag
		if active {
			selected = true
		}
		p.Controls[i].Active = active
	}

	p.Results = nil
	for _, project := range Matches(p.Projects, tag) {
		for _, pdf := range f.catalog {
			p.Results = append(p.Results, models.ResultItem{
				Name:  pdf.Name,
				URL:   pdf.URL,
				Label: pdf.Name + " - " + project.Title,
			})
		}
	}

	return len(p.Results)
}

// Matches returns the projects shown for tag, in their original order
func Matches(projects []models.Project, tag string) []models.Project {
	var out []models.Project
	for _, project := range projects {
		if tag == models.FilterAll || project.Category == tag {
			out = append(out, project)
		}
	}
	return out
}
