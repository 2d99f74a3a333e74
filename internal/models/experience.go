package models

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ExperienceEntry is one position on the work-experience timeline
type ExperienceEntry struct {
	ID          string   `json:"id" yaml:"id"`
	Role        string   `json:"role" yaml:"role"`
	Company     string   `json:"company" yaml:"company"`
	Logo        string   `json:"logo,omitempty" yaml:"logo,omitempty"`
	Period      string   `json:"period" yaml:"period"`
	Description Bullets  `json:"description" yaml:"description"`
	Skills      []string `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// SearchableText returns role, company and every description bullet
func (e ExperienceEntry) SearchableText() []string {
	out := make([]string, 0, 2+len(e.Description))
	out = append(out, e.Role, e.Company)
	return append(out, e.Description...)
}

// Tags returns the skills used in the role
func (e ExperienceEntry) Tags() []string {
	return e.Skills
}

// ExperienceData is the experience section: a heading and its items
type ExperienceData struct {
	Title string            `json:"title" yaml:"title"`
	Items []ExperienceEntry `json:"items" yaml:"items"`
}

// Bullets is a description given either as one paragraph or as a list of
// points. Both forms decode into a slice.
type Bullets []string

// UnmarshalJSON accepts a string, an array of strings, or null
func (b *Bullets) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*b = nil
			return nil
		}
		*b = Bullets{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("description must be a string or list of strings: %w", err)
	}
	*b = many
	return nil
}

// UnmarshalYAML accepts a scalar or a sequence of scalars
func (b *Bullets) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			*b = nil
			return nil
		}
		*b = Bullets{node.Value}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return fmt.Errorf("decoding description list: %w", err)
		}
		*b = many
		return nil
	}
	return fmt.Errorf("description must be a string or list of strings, got yaml kind %d", node.Kind)
}
