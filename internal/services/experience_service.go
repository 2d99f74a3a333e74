package services

import (
	"portfolio.dev/internal/content"
	"portfolio.dev/internal/models"
)

// ExperienceService serves the work history
type ExperienceService struct {
	store *ContentStore
}

// NewExperienceService creates a new ExperienceService
func NewExperienceService(store *ContentStore) *ExperienceService {
	return &ExperienceService{store: store}
}

// GetAll returns every experience entry in content order
func (s *ExperienceService) GetAll() []models.ExperienceEntry {
	return s.store.Site().Experience.Items
}

// Title returns the experience section heading
func (s *ExperienceService) Title() string {
	return s.store.Site().Experience.Title
}

// List returns the entries matching the search text and category
func (s *ExperienceService) List(c content.Criteria) []models.ExperienceEntry {
	return content.Filter(s.GetAll(), c)
}

// SearchResult holds both filtered collections for one query
type SearchResult struct {
	Query      string                   `json:"query"`
	Category   content.CategoryID       `json:"category"`
	Experience []models.ExperienceEntry `json:"experience"`
	Projects   []models.Project         `json:"projects"`
}

// Search applies the same criteria to experience and projects
func Search(exp *ExperienceService, proj *ProjectService, c content.Criteria) SearchResult {
	category := c.Category
	if category == "" {
		category = content.CategoryAll
	}
	return SearchResult{
		Query:      c.Query,
		Category:   category,
		Experience: exp.List(c),
		Projects:   proj.List(c),
	}
}
