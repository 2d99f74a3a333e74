package services

import (
	"errors"
	"fmt"

	"portfolio.dev/internal/content"
	"portfolio.dev/internal/models"
)

// ErrProjectNotFound is returned by GetByID for unknown ids
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	store *ContentStore
}

// NewProjectService creates a new ProjectService
func NewProjectService(store *ContentStore) *ProjectService {
	return &ProjectService{store: store}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.store.Site().Projects.Items
}

// Title returns the projects section heading
func (s *ProjectService) Title() string {
	return s.store.Site().Projects.Title
}

// List returns the projects matching the search text and category
func (s *ProjectService) List(c content.Criteria) []models.Project {
	return content.Filter(s.GetAll(), c)
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	projects := s.GetAll()
	for i := range projects {
		if projects[i].ID == id {
			p := projects[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}
