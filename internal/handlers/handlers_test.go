package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio.dev/internal/config"
	"portfolio.dev/internal/content"
	"portfolio.dev/internal/middleware"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/services"
)

const testExperience = `{
  "title": "Experience",
  "items": [
    {"id": "1", "role": "Backend Engineer", "company": "Acme", "period": "2023",
     "description": "Designed GraphQL APIs", "skills": ["Node.js", "GraphQL"]},
    {"id": "2", "role": "Firmware Intern", "company": "Chipco", "period": "2021",
     "description": ["Wrote LVGL screens"], "skills": ["C++", "LVGL"]}
  ]
}`

const testProjects = `{
  "title": "Projects",
  "items": [
    {"id": "orbit", "title": "Orbit", "description": "Satellite tracker", "tags": ["React", "AWS"]},
    {"id": "grid", "title": "Grid", "description": "Power usage model", "tags": ["PyTorch"]}
  ]
}`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dataDir := t.TempDir()
	staticDir := t.TempDir()
	write := func(dir, name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}
	write(dataDir, "experience.json", testExperience)
	write(dataDir, "projects.json", testProjects)
	write(dataDir, "hero.yaml", "name: Ada\ntitle: Engineer\n")
	write(staticDir, "index.html", "<!doctype html><title>portfolio</title>")
	write(staticDir, "app.js", "console.log('hi')")

	return &config.Config{
		Server: config.ServerConfig{
			Addr:            ":0",
			StaticDir:       staticDir,
			LogLevel:        "debug",
			LogFormat:       "console",
			ShutdownTimeout: time.Second,
		},
		Content: config.ContentConfig{DataPath: dataDir},
		Background: config.BackgroundConfig{
			Width: 120, Height: 80, MaxWidth: 400, MaxHeight: 300,
			FPS: 100, Stars: 10, Nebulae: 2, MaxFrames: 5,
		},
		Site: config.SiteConfig{Theme: "light"},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := testConfig(t)
	log := zap.NewNop()
	store, err := services.NewContentStore(context.Background(), cfg.Content.DataPath, models.Theme(cfg.Site.Theme), log)
	require.NoError(t, err)
	return SetupRoutes(cfg, NewServices(cfg, store, log), log)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestGetSite(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/site")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.Equal(t, "light", body["theme"])
	assert.Equal(t, "Ada", body["hero"].(map[string]any)["name"])
	assert.NotContains(t, body, "experience")
}

func TestListCategories(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/categories")
	require.Equal(t, http.StatusOK, rec.Code)

	cats := decode[[]content.Category](t, rec)
	require.Len(t, cats, 6)
	assert.Equal(t, content.CategoryAll, cats[0].ID)
	assert.Equal(t, "AI/ML", cats[3].Label)
}

func TestListExperience(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"all", "", []string{"1", "2"}},
		{"embedded", "?category=embedded", []string{"2"}},
		{"case-insensitive category", "?category=%20Backend%20", []string{"1", "2"}},
		{"search bullets", "?q=lvgl%20screens", []string{"2"}},
		{"unknown category", "?category=quantum", []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(t, router, "/api/experience"+tc.query)
			require.Equal(t, http.StatusOK, rec.Code)

			data := decode[models.ExperienceData](t, rec)
			assert.Equal(t, "Experience", data.Title)
			got := []string{}
			for _, e := range data.Items {
				got = append(got, e.ID)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestListProjectsEmptyResultIsArray(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/projects?q=nothing-matches")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestGetProject(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/projects/orbit")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Orbit", decode[models.Project](t, rec).Title)

	rec = get(t, router, "/api/projects/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[errorResponse](t, rec)
	assert.Equal(t, "Project not found", body.Error)
	assert.Equal(t, rec.Header().Get(middleware.RequestIDHeader), body.RequestID)
}

func TestSearch(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/search?category=cloud")
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[services.SearchResult](t, rec)
	assert.Equal(t, content.CategoryCloud, res.Category)
	assert.Empty(t, res.Experience)
	require.Len(t, res.Projects, 1)
	assert.Equal(t, "orbit", res.Projects[0].ID)
}

func TestStaticAndIndex(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>portfolio</title>")

	rec = get(t, router, "/static/app.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "console.log"))
}
