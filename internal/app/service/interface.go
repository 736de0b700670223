package service

import (
	"context"
	"net/http"

	"github.com/akraev/reposhare/internal/models"
	"github.com/akraev/reposhare/internal/storage"
)

// Storage is the store contract the lifecycle engine consumes.
type Storage interface {
	Get(context.Context, string) (*storage.LinkRecord, error)
	Put(context.Context, storage.LinkRecord) error
	Delete(context.Context, string) error
	List(context.Context) ([]storage.LinkRecord, error)
	ReplaceAll(context.Context, []storage.LinkRecord) error
	UserIndex(context.Context, string) ([]storage.IndexEntry, error)
	AppendUserIndex(context.Context, string, storage.IndexEntry) error
	RemoveUserIndex(context.Context, string, string) error
	PruneUserIndex(context.Context, map[string]struct{}) error
	PingContext(context.Context) error
}

// LinkServiceIface is what handlers see of the lifecycle engine.
type LinkServiceIface interface {
	PingContext(ctx context.Context) error
	CreateLink(ctx context.Context, ownerID, ownerName string, repos []models.Repository, includePrivate bool, durationHours int) (*storage.LinkRecord, string, error)
	ValidateLink(ctx context.Context, id string) ValidationResult
	ExtendLink(ctx context.Context, id string, additionalHours int, requesterID string) (bool, error)
	DeactivateLink(ctx context.Context, id string) (bool, error)
	DeleteLink(ctx context.Context, id string, requesterID string) (bool, error)
	LinksByOwner(ctx context.Context, ownerID string) ([]storage.LinkRecord, error)
	LinkStats(ctx context.Context, id string, requesterID string) (*LinkStats, error)
	SystemStats(ctx context.Context) (SystemStats, error)
}

// GitHubIface is the boundary to the GitHub collaborator.
type GitHubIface interface {
	ExchangeCode(ctx context.Context, code string) (string, error)
	FetchUser(ctx context.Context, token string) (*GitHubUser, error)
	FetchRepositories(ctx context.Context, token string) ([]models.Repository, error)
}

// AuthIface defines the interface for JWT session handling used in middleware.
type AuthIface interface {
	BuildJWTString(user SessionUser) (string, error)
	ParseClaims(c *http.Cookie) (*Claims, error)
	ParseRawJWT(tokenString string) (*Claims, error)
}
