package domain

import "time"

// Repository is one entry of a user's public repository list.
// Follows Single Responsibility - only holds repository data.
type Repository struct {
	Name        string
	URL         string
	Description string // empty when the repository has none
	Language    string // primary language, empty when GitHub recorded none
	Topics      []string
	Stars       int
	Forks       int
	IsFork      bool
	UpdatedAt   time.Time
}

// ProjectCard is the display-ready projection of a Repository.
type ProjectCard struct {
	Name        string         `json:"name"`
	URL         string         `json:"url"`
	Description string         `json:"description,omitempty"`
	Topics      []string       `json:"topics,omitempty"`
	Language    *LanguageBadge `json:"language,omitempty"` // nil when no language is recorded
	Stars       int            `json:"stars"`
	Forks       int            `json:"forks"`
}

// LanguageBadge is the colored language indicator of a project card.
type LanguageBadge struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
