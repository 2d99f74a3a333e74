package models

// Hero is the landing banner
type Hero struct {
	Name            string `json:"name" yaml:"name"`
	Title           string `json:"title" yaml:"title"`
	ProfileImage    string `json:"profileImage,omitempty" yaml:"profileImage,omitempty"`
	ProfileImageAlt string `json:"profileImageAlt,omitempty" yaml:"profileImageAlt,omitempty"`
}

// Button is a link rendered as a button
type Button struct {
	Label    string `json:"label" yaml:"label"`
	Href     string `json:"href" yaml:"href"`
	Download bool   `json:"download,omitempty" yaml:"download,omitempty"`
}

// About is the biography section
type About struct {
	Title        string   `json:"title" yaml:"title"`
	Introduction string   `json:"introduction" yaml:"introduction"`
	Buttons      []Button `json:"buttons,omitempty" yaml:"buttons,omitempty"`
}

// SkillCategory groups related skills
type SkillCategory struct {
	ID     int      `json:"id" yaml:"id"`
	Name   string   `json:"name" yaml:"name"`
	Skills []string `json:"skills" yaml:"skills"`
}

// SkillsData is the skills section
type SkillsData struct {
	Title      string          `json:"title" yaml:"title"`
	Categories []SkillCategory `json:"categories" yaml:"categories"`
}

// ContactMethod is one way to reach the site owner
type ContactMethod struct {
	ID    int    `json:"id" yaml:"id"`
	Icon  string `json:"icon" yaml:"icon"`
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Href  string `json:"href" yaml:"href"`
	Type  string `json:"type" yaml:"type"`
}

// ContactData is the contact section
type ContactData struct {
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Methods     []ContactMethod `json:"methods" yaml:"methods"`
}

// Theme is the binary light/dark flag handed to the page shell
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Site bundles every content section
type Site struct {
	Hero       Hero           `json:"hero"`
	About      About          `json:"about"`
	Experience ExperienceData `json:"experience"`
	Projects   ProjectsData   `json:"projects"`
	Skills     SkillsData     `json:"skills"`
	Contact    ContactData    `json:"contact"`
	Theme      Theme          `json:"theme"`
}
