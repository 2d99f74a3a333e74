package models

// Project represents a portfolio project
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	TagList     []string `json:"tags" yaml:"tags"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
	LiveURL     string   `json:"liveUrl,omitempty" yaml:"liveUrl,omitempty"`
	GitHubURL   string   `json:"githubUrl,omitempty" yaml:"githubUrl,omitempty"`
}

// SearchableText returns the title and description
func (p Project) SearchableText() []string {
	return []string{p.Title, p.Description}
}

// Tags returns the project's technology tags
func (p Project) Tags() []string {
	return p.TagList
}

// ProjectsData is the projects section: a heading and its items
type ProjectsData struct {
	Title string    `json:"title" yaml:"title"`
	Items []Project `json:"items" yaml:"items"`
}
