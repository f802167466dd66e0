package models

// Project represents a portfolio project card
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"` // markdown
	TechStack   []string `json:"tech_stack" yaml:"tech_stack"`
	GitHubURL   string   `json:"github_url,omitempty" yaml:"github_url,omitempty"`
	LiveURL     string   `json:"live_url,omitempty" yaml:"live_url,omitempty"`
	Year        int      `json:"year" yaml:"year"`
	Featured    bool     `json:"featured" yaml:"featured"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}
