package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio.dev/internal/models"
	"portfolio.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects?q=&category=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.List(parseCriteria(r))
	respondJSON(w, http.StatusOK, models.ProjectsData{
		Title: h.projectService.Title(),
		Items: projects,
	})
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, r, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to load project")
		return
	}

	respondJSON(w, http.StatusOK, project)
}
