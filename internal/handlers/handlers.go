package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"portfolio.dev/internal/config"
	"portfolio.dev/internal/middleware"
	"portfolio.dev/internal/services"
)

// Services bundles what the handlers depend on
type Services struct {
	Content    *services.ContentStore
	Experience *services.ExperienceService
	Projects   *services.ProjectService
	Contact    *services.ContactService
	Background *services.BackgroundService
}

// NewServices wires the services around a loaded content store
func NewServices(cfg *config.Config, store *services.ContentStore, log *zap.Logger) Services {
	return Services{
		Content:    store,
		Experience: services.NewExperienceService(store),
		Projects:   services.NewProjectService(store),
		Contact:    services.NewContactService(cfg.Contact.SubmitDelay, log.Named("contact")),
		Background: services.NewBackgroundService(cfg.Background, log.Named("background")),
	}
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, svc Services, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))

	// Initialize handlers
	contentHandler := NewContentHandler(svc.Content, svc.Experience, svc.Projects)
	projectHandler := NewProjectHandler(svc.Projects)
	contactHandler := NewContactHandler(svc.Contact, log)
	backgroundHandler := NewBackgroundHandler(svc.Background, log)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Content endpoints
		r.Get("/site", contentHandler.GetSite)
		r.Get("/categories", contentHandler.ListCategories)
		r.Get("/experience", contentHandler.ListExperience)
		r.Get("/search", contentHandler.Search)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		r.Post("/contact", contactHandler.Submit)

		// Background endpoints
		r.Get("/background.png", backgroundHandler.Snapshot)
		r.Get("/background/ws", backgroundHandler.Stream)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.Server.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Serve index.html at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.Server.StaticDir, "index.html"))
	})

	return r
}

// errorResponse is the body of every error reply
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response tagged with the request id
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, status, errorResponse{
		Error:     message,
		RequestID: middleware.GetRequestID(r.Context()),
	})
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// parseSeedParam parses an unsigned seed, 0 when absent or malformed
func parseSeedParam(r *http.Request) uint64 {
	seed, err := strconv.ParseUint(r.URL.Query().Get("seed"), 10, 64)
	if err != nil {
		return 0
	}
	return seed
}
