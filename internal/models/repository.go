package models

import "time"

// Repository is a single repository as captured in a link snapshot.
// The field set mirrors what the GitHub API returns for /user/repos.
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	HTMLURL         string    `json:"html_url"`
	Private         bool      `json:"private"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	Language        string    `json:"language"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Topics          []string  `json:"topics,omitempty"`
}

// FilterPrivate returns repos unchanged when includePrivate is set,
// otherwise only the public subset. The result is always a fresh slice
// so the snapshot cannot alias the caller's list.
func FilterPrivate(repos []Repository, includePrivate bool) []Repository {
	filtered := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if includePrivate || !r.Private {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
