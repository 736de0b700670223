// Package models defines the request and response data structures used
// for communication between the browser client and the share service.
package models

import "time"

// AuthRequest carries the OAuth authorization code returned by GitHub.
type AuthRequest struct {
	// Code is the temporary authorization code from the OAuth redirect.
	Code string `json:"code"`
}

// AuthResponse describes the authenticated session owner.
type AuthResponse struct {
	// Login is the GitHub login, used as the owner id for links.
	Login string `json:"login"`

	// Name is the display name shown on share pages.
	Name string `json:"name"`
}

// CreateLinkRequest represents a request to mint a shareable link.
type CreateLinkRequest struct {
	// Repositories is the owner's current repository list; the service
	// freezes a filtered copy of it into the link.
	Repositories []Repository `json:"repositories"`

	// IncludePrivate keeps private repositories in the snapshot when true.
	IncludePrivate bool `json:"include_private"`

	// DurationHours is how long the link stays valid, in hours.
	DurationHours int `json:"duration_hours"`
}

// CreateLinkResponse represents the response to a successful link creation.
type CreateLinkResponse struct {
	// Result is the full shareable URL (<base>/share/<id>).
	Result string `json:"result"`

	// Link is the stored link as seen by its owner.
	Link LinkView `json:"link"`
}

// ExtendLinkRequest asks to push a link's expiry further into the future.
type ExtendLinkRequest struct {
	AdditionalHours int `json:"additional_hours"`
}

// LinkView is the owner-facing representation of a shared link.
type LinkView struct {
	ID             string       `json:"id"`
	OwnerID        string       `json:"owner_id"`
	OwnerName      string       `json:"owner_name"`
	Repositories   []Repository `json:"repositories"`
	IncludePrivate bool         `json:"include_private"`
	CreatedAt      time.Time    `json:"created_at"`
	ExpiresAt      time.Time    `json:"expires_at"`
	AccessCount    uint64       `json:"access_count"`
	LastAccessedAt *time.Time   `json:"last_accessed_at,omitempty"`
	IsActive       bool         `json:"is_active"`
}

// ShareViewResponse is the public payload served to an unauthenticated
// visitor opening /share/<id>.
type ShareViewResponse struct {
	OwnerName       string       `json:"owner_name"`
	Repositories    []Repository `json:"repositories"`
	ExpiresAt       time.Time    `json:"expires_at"`
	TimeRemainingMS int64        `json:"time_remaining_ms"`
}

// ShareErrorResponse explains why a share link could not be served.
type ShareErrorResponse struct {
	// Error is a machine-readable reason: not_found, expired, deactivated.
	Error string `json:"error"`
}

// LinkStatsResponse holds per-link counters. Reading it never changes them.
type LinkStatsResponse struct {
	AccessCount     uint64     `json:"access_count"`
	TimeRemainingMS int64      `json:"time_remaining_ms"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	ExpiresAt       time.Time  `json:"expires_at"`
	LastAccessedAt  *time.Time `json:"last_accessed_at,omitempty"`
}

// SystemStatsResponse holds store-wide counters.
type SystemStatsResponse struct {
	TotalLinks    int    `json:"total_links"`
	ActiveLinks   int    `json:"active_links"`
	ExpiredLinks  int    `json:"expired_links"`
	TotalAccesses uint64 `json:"total_accesses"`
}
