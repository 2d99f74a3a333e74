package content

import "strings"

// CategoryID identifies one of the fixed filter categories
type CategoryID string

const (
	CategoryAll      CategoryID = "all"
	CategoryFrontend CategoryID = "frontend"
	CategoryBackend  CategoryID = "backend"
	CategoryAI       CategoryID = "ai"
	CategoryCloud    CategoryID = "cloud"
	CategoryEmbedded CategoryID = "embedded"
)

// Category is a filter button as shown to visitors
type Category struct {
	ID    CategoryID `json:"id"`
	Label string     `json:"label"`
}

var categories = []Category{
	{CategoryAll, "All"},
	{CategoryFrontend, "Frontend"},
	{CategoryBackend, "Backend"},
	{CategoryAI, "AI/ML"},
	{CategoryCloud, "Cloud & Data"},
	{CategoryEmbedded, "Embedded"},
}

// keywords maps each category to the lowercase markers a tag must contain.
// Markers are matched as substrings of the lowercased tag.
var keywords = map[CategoryID][]string{
	CategoryFrontend: {
		"react", "next.js", "vue", "angular", "css", "tailwind", "html",
		"javascript", "typescript", "redux", "sass", "figma", "lvgl", "ui", "ux",
	},
	CategoryBackend: {
		"node", "express", "python", "java", "api", "database", "mongodb",
		"postgresql", "sql", "graphql", "rest", "docker", "backend", "c++", "debugging",
	},
	CategoryAI: {
		"ai", "ml", "machine learning", "deep learning", "reinforcement learning",
		"tensorflow", "pytorch", "data visualization", "gnn", "probabilistic",
		"graphical models",
	},
	CategoryCloud: {
		"aws", "azure", "gcp", "cloud", "cosmos", "graphdb", "redis", "kafka",
		"docker", "kubernetes", "microservices", "gremlin",
	},
	CategoryEmbedded: {
		"c++", "lvgl", "embedded", "firmware", "iot", "hardware", "rtos",
	},
}

// Categories returns the filter categories in display order
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Keywords returns a copy of the markers for a category, or nil if the
// category has no table (including "all")
func Keywords(id CategoryID) []string {
	markers, ok := keywords[id]
	if !ok {
		return nil
	}
	out := make([]string, len(markers))
	copy(out, markers)
	return out
}

// ParseCategory normalizes a raw category value. An empty value means all.
// Unknown values are passed through and will match no entries.
func ParseCategory(raw string) CategoryID {
	id := CategoryID(strings.ToLower(strings.TrimSpace(raw)))
	if id == "" {
		return CategoryAll
	}
	return id
}

// Known reports whether the category is part of the fixed set
func (c CategoryID) Known() bool {
	if c == CategoryAll {
		return true
	}
	_, ok := keywords[c]
	return ok
}
