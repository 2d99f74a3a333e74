package handlers

import (
	"net/http"

	"portfolio.dev/internal/content"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/services"
)

// ContentHandler serves the site sections and the filtered collections
type ContentHandler struct {
	store      *services.ContentStore
	experience *services.ExperienceService
	projects   *services.ProjectService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(store *services.ContentStore, es *services.ExperienceService, ps *services.ProjectService) *ContentHandler {
	return &ContentHandler{store: store, experience: es, projects: ps}
}

// siteResponse is the page chrome around the two filterable sections
type siteResponse struct {
	Hero    models.Hero        `json:"hero"`
	About   models.About       `json:"about"`
	Skills  models.SkillsData  `json:"skills"`
	Contact models.ContactData `json:"contact"`
	Theme   models.Theme       `json:"theme"`
}

// GetSite handles GET /api/site
func (h *ContentHandler) GetSite(w http.ResponseWriter, r *http.Request) {
	site := h.store.Site()
	respondJSON(w, http.StatusOK, siteResponse{
		Hero:    site.Hero,
		About:   site.About,
		Skills:  site.Skills,
		Contact: site.Contact,
		Theme:   site.Theme,
	})
}

// ListCategories handles GET /api/categories
func (h *ContentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, content.Categories())
}

// ListExperience handles GET /api/experience?q=&category=
func (h *ContentHandler) ListExperience(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.ExperienceData{
		Title: h.experience.Title(),
		Items: h.experience.List(parseCriteria(r)),
	})
}

// Search handles GET /api/search?q=&category=
func (h *ContentHandler) Search(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, services.Search(h.experience, h.projects, parseCriteria(r)))
}

// parseCriteria reads the q and category query parameters
func parseCriteria(r *http.Request) content.Criteria {
	q := r.URL.Query()
	return content.Criteria{
		Query:    q.Get("q"),
		Category: content.ParseCategory(q.Get("category")),
	}
}
