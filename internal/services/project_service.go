package services

import (
	"errors"
	"fmt"

	"portfolio.dev/internal/models"
)

// ErrProjectNotFound is returned when no project has the requested ID
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects *models.ProjectList
	filters  []string
}

// NewProjectService creates a new ProjectService.
// filters overrides the derived filter tags when non-empty.
func NewProjectService(projects *models.ProjectList, filters []string) *ProjectService {
	if projects == nil {
		projects = &models.ProjectList{}
	}
	return &ProjectService{projects: projects, filters: filters}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.projects.Projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for i := range s.projects.Projects {
		if s.projects.Projects[i].ID == id {
			return &s.projects.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// Categories returns the distinct project categories in first-seen order
func (s *ProjectService) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.projects.Projects {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// FilterTags returns the tags for the filter buttons, "all" first
func (s *ProjectService) FilterTags() []string {
	if len(s.filters) > 0 {
		return append([]string(nil), s.filters...)
	}
	return append([]string{models.FilterAll}, s.Categories()...)
}
