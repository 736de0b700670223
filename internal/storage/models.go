package storage

import (
	"fmt"
	"time"

	"github.com/akraev/reposhare/internal/models"
)

// SchemaVersion tags every persisted payload so a future layout change
// can be migrated instead of silently misread.
const SchemaVersion = 1

// LinkRecord is a shared link as held by the store. The repository
// snapshot is frozen at creation time; later changes to the owner's
// live repository list never affect an existing record.
type LinkRecord struct {
	ID             string
	OwnerID        string
	OwnerName      string
	Repositories   []models.Repository
	IncludePrivate bool
	CreatedAt      time.Time
	ExpiresAt      time.Time
	AccessCount    uint64
	LastAccessedAt *time.Time
	IsActive       bool
}

// Expired reports whether the record's expiry has passed at the given instant.
func (r *LinkRecord) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// Valid reports whether the record can still be served: active and not expired.
func (r *LinkRecord) Valid(now time.Time) bool {
	return r.IsActive && !r.Expired(now)
}

// IndexEntry is one element of the per-owner link index.
type IndexEntry struct {
	LinkID    string
	CreatedAt time.Time
}

// linkJSON is the on-disk form of a LinkRecord. Timestamps are RFC3339
// strings, matching the persisted layout the browser client wrote.
type linkJSON struct {
	ID             string              `json:"id"`
	OwnerID        string              `json:"owner_id"`
	OwnerName      string              `json:"owner_name"`
	Repositories   []models.Repository `json:"repositories"`
	IncludePrivate bool                `json:"include_private"`
	CreatedAt      string              `json:"created_at"`
	ExpiresAt      string              `json:"expires_at"`
	AccessCount    uint64              `json:"access_count"`
	LastAccessedAt string              `json:"last_accessed_at,omitempty"`
	IsActive       bool                `json:"is_active"`
}

type indexEntryJSON struct {
	LinkID    string `json:"link_id"`
	CreatedAt string `json:"created_at"`
}

func encodeLink(r LinkRecord) linkJSON {
	j := linkJSON{
		ID:             r.ID,
		OwnerID:        r.OwnerID,
		OwnerName:      r.OwnerName,
		Repositories:   r.Repositories,
		IncludePrivate: r.IncludePrivate,
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:      r.ExpiresAt.UTC().Format(time.RFC3339Nano),
		AccessCount:    r.AccessCount,
		IsActive:       r.IsActive,
	}
	if r.LastAccessedAt != nil {
		j.LastAccessedAt = r.LastAccessedAt.UTC().Format(time.RFC3339Nano)
	}
	return j
}

func decodeLink(j linkJSON) (LinkRecord, error) {
	if j.ID == "" {
		return LinkRecord{}, fmt.Errorf("%w: missing id", ErrCorrupted)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, j.CreatedAt)
	if err != nil {
		return LinkRecord{}, fmt.Errorf("%w: created_at %q: %v", ErrCorrupted, j.CreatedAt, err)
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, j.ExpiresAt)
	if err != nil {
		return LinkRecord{}, fmt.Errorf("%w: expires_at %q: %v", ErrCorrupted, j.ExpiresAt, err)
	}
	if !expiresAt.After(createdAt) {
		return LinkRecord{}, fmt.Errorf("%w: expires_at not after created_at for %s", ErrCorrupted, j.ID)
	}

	r := LinkRecord{
		ID:             j.ID,
		OwnerID:        j.OwnerID,
		OwnerName:      j.OwnerName,
		Repositories:   j.Repositories,
		IncludePrivate: j.IncludePrivate,
		CreatedAt:      createdAt,
		ExpiresAt:      expiresAt,
		AccessCount:    j.AccessCount,
		IsActive:       j.IsActive,
	}
	if j.LastAccessedAt != "" {
		la, err := time.Parse(time.RFC3339Nano, j.LastAccessedAt)
		if err != nil {
			return LinkRecord{}, fmt.Errorf("%w: last_accessed_at %q: %v", ErrCorrupted, j.LastAccessedAt, err)
		}
		r.LastAccessedAt = &la
	}
	return r, nil
}

func encodeIndexEntry(e IndexEntry) indexEntryJSON {
	return indexEntryJSON{
		LinkID:    e.LinkID,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func decodeIndexEntry(j indexEntryJSON) (IndexEntry, error) {
	if j.LinkID == "" {
		return IndexEntry{}, fmt.Errorf("%w: index entry missing link_id", ErrCorrupted)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, j.CreatedAt)
	if err != nil {
		return IndexEntry{}, fmt.Errorf("%w: index created_at %q: %v", ErrCorrupted, j.CreatedAt, err)
	}
	return IndexEntry{LinkID: j.LinkID, CreatedAt: createdAt}, nil
}
