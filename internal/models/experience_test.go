package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"portfolio.dev/internal/content"
	"portfolio.dev/internal/models"
)

func TestBulletsUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.Bullets
		wantErr bool
	}{
		{name: "single string", input: `"Shipped the thing"`, want: models.Bullets{"Shipped the thing"}},
		{name: "list", input: `["one", "two"]`, want: models.Bullets{"one", "two"}},
		{name: "empty string", input: `""`, want: nil},
		{name: "null", input: `null`, want: nil},
		{name: "number", input: `42`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b models.Bullets
			err := json.Unmarshal([]byte(tc.input), &b)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, b)
		})
	}
}

func TestBulletsUnmarshalYAML(t *testing.T) {
	var entry models.ExperienceEntry
	err := yaml.Unmarshal([]byte("id: a\nrole: Engineer\ndescription: Wrote firmware\n"), &entry)
	require.NoError(t, err)
	assert.Equal(t, models.Bullets{"Wrote firmware"}, entry.Description)

	err = yaml.Unmarshal([]byte("id: b\ndescription:\n  - first\n  - second\n"), &entry)
	require.NoError(t, err)
	assert.Equal(t, models.Bullets{"first", "second"}, entry.Description)

	err = yaml.Unmarshal([]byte("id: c\ndescription:\n  key: value\n"), &entry)
	assert.Error(t, err)
}

func TestExperienceFilteringThroughEngine(t *testing.T) {
	raw := `{
		"title": "Experience",
		"items": [
			{"id": "1", "role": "Frontend Engineer", "company": "Acme", "period": "2023",
			 "description": ["Built dashboards", "Led a Kubernetes deployment"],
			 "skills": ["React", "Node.js"]},
			{"id": "2", "role": "Firmware Intern", "company": "Chipco", "period": "2022",
			 "description": "Brought up boards", "skills": ["C++", "RTOS"]},
			{"id": "3", "role": "Analyst", "company": "Numbers Inc", "period": "2021",
			 "description": "Spreadsheets"}
		]
	}`

	var data models.ExperienceData
	require.NoError(t, json.Unmarshal([]byte(raw), &data))

	got := content.Filter(data.Items, content.Criteria{Query: "kubernetes", Category: content.CategoryAll})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = content.Filter(data.Items, content.Criteria{Category: content.CategoryEmbedded})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	// an entry without skills can still be found by text
	got = content.Filter(data.Items, content.Criteria{Query: "spreadsheets"})
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestProjectEntry(t *testing.T) {
	p := models.Project{ID: "p", Title: "Star Map", Description: "Canvas toy", TagList: []string{"TypeScript"}}
	assert.Equal(t, []string{"Star Map", "Canvas toy"}, p.SearchableText())
	assert.Equal(t, []string{"TypeScript"}, p.Tags())
	assert.True(t, content.MatchesCategory(p, content.CategoryFrontend))
}
