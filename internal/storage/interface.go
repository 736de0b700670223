package storage

import (
	"context"
	"errors"
)

// Sentinel errors shared by all store implementations.
var (
	// ErrNotFound is returned when no record exists for the given id.
	ErrNotFound = errors.New("link not found")

	// ErrCorrupted is returned when a persisted payload cannot be decoded
	// into a well-formed record.
	ErrCorrupted = errors.New("corrupted link payload")
)

// LinkStore is the persistence contract for shared links and the
// per-owner index. Every mutation is flushed before the call returns.
type LinkStore interface {
	Get(context.Context, string) (*LinkRecord, error)
	Put(context.Context, LinkRecord) error
	Delete(context.Context, string) error
	List(context.Context) ([]LinkRecord, error)

	// ReplaceAll rewrites the record set in one shot; used by the
	// garbage collector's mark-and-rewrite sweep.
	ReplaceAll(context.Context, []LinkRecord) error

	UserIndex(context.Context, string) ([]IndexEntry, error)
	AppendUserIndex(context.Context, string, IndexEntry) error
	RemoveUserIndex(context.Context, string, string) error

	// PruneUserIndex drops every index entry whose link id is not in keep.
	PruneUserIndex(context.Context, map[string]struct{}) error

	PingContext(context.Context) error
}
