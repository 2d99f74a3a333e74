package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio.dev/internal/models"
)

const experienceJSON = `{
  "title": "Experience",
  "items": [
    {
      "id": "1",
      "role": "Software Engineer",
      "company": "Acme",
      "period": "2022 - Present",
      "description": "Built REST APIs in Go",
      "skills": ["Go", "PostgreSQL"]
    },
    {
      "id": "2",
      "role": "Frontend Developer",
      "company": "Widgets",
      "period": "2020 - 2022",
      "description": ["Shipped React dashboards", "Owned the design system"],
      "skills": ["React", "TypeScript"]
    }
  ]
}`

const projectsYAML = `title: Projects
items:
  - id: star-field
    title: Star Field
    description: Canvas particle animation
    tags: [TypeScript, Canvas]
  - id: chat-bot
    title: Chat Bot
    description: LLM assistant for support tickets
    tags: [PyTorch, AWS]
`

const heroJSON = `{"name": "Ada", "title": "Engineer"}`

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

// writeContent fills a temp dir with a small content set
func writeContent(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "experience.json", experienceJSON)
	writeFile(t, dir, "projects.yaml", projectsYAML)
	writeFile(t, dir, "hero.json", heroJSON)
	return dir
}

func newTestStore(t *testing.T) *ContentStore {
	t.Helper()
	store, err := NewContentStore(context.Background(), writeContent(t), models.ThemeDark, zap.NewNop())
	require.NoError(t, err)
	return store
}
