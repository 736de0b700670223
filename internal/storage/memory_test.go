package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akraev/reposhare/internal/models"
)

func makeRecord(id, owner string, createdAt time.Time) LinkRecord {
	return LinkRecord{
		ID:        id,
		OwnerID:   owner,
		OwnerName: owner,
		Repositories: []models.Repository{
			{ID: 1, Name: "demo"},
		},
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(time.Hour),
		IsActive:  true,
	}
}

func TestMemoryStorage_PutGetDelete(t *testing.T) {
	s, err := CreateMemoryStorage()
	require.NoError(t, err)

	ctx := context.Background()
	now := time.Now().UTC()

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	record := makeRecord("l1", "alice", now)
	require.NoError(t, s.Put(ctx, record))

	got, err := s.Get(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, record, *got)

	// Put overwrites in place.
	record.AccessCount = 7
	require.NoError(t, s.Put(ctx, record))
	got, err = s.Get(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got.AccessCount)

	require.NoError(t, s.Delete(ctx, "l1"))
	_, err = s.Get(ctx, "l1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "l1"), ErrNotFound)
}

func TestMemoryStorage_ListAndReplaceAll(t *testing.T) {
	s, err := CreateMemoryStorage()
	require.NoError(t, err)

	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, s.Put(ctx, makeRecord("l1", "alice", now)))
	require.NoError(t, s.Put(ctx, makeRecord("l2", "bob", now)))
	require.NoError(t, s.Put(ctx, makeRecord("l3", "alice", now)))

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	keep := []LinkRecord{makeRecord("l2", "bob", now)}
	require.NoError(t, s.ReplaceAll(ctx, keep))

	records, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "l2", records[0].ID)
}

func TestMemoryStorage_UserIndex(t *testing.T) {
	s, err := CreateMemoryStorage()
	require.NoError(t, err)

	ctx := context.Background()
	now := time.Now().UTC()

	entries, err := s.UserIndex(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, s.AppendUserIndex(ctx, "alice", IndexEntry{LinkID: "l1", CreatedAt: now}))
	require.NoError(t, s.AppendUserIndex(ctx, "alice", IndexEntry{LinkID: "l2", CreatedAt: now.Add(time.Minute)}))
	require.NoError(t, s.AppendUserIndex(ctx, "bob", IndexEntry{LinkID: "l3", CreatedAt: now}))

	entries, err = s.UserIndex(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "l1", entries[0].LinkID)
	assert.Equal(t, "l2", entries[1].LinkID)

	require.NoError(t, s.RemoveUserIndex(ctx, "alice", "l1"))
	entries, err = s.UserIndex(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "l2", entries[0].LinkID)

	// Bob's index is untouched.
	entries, err = s.UserIndex(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMemoryStorage_PruneUserIndex(t *testing.T) {
	s, err := CreateMemoryStorage()
	require.NoError(t, err)

	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, s.AppendUserIndex(ctx, "alice", IndexEntry{LinkID: "l1", CreatedAt: now}))
	require.NoError(t, s.AppendUserIndex(ctx, "alice", IndexEntry{LinkID: "l2", CreatedAt: now}))
	require.NoError(t, s.AppendUserIndex(ctx, "bob", IndexEntry{LinkID: "l3", CreatedAt: now}))

	require.NoError(t, s.PruneUserIndex(ctx, map[string]struct{}{"l2": {}}))

	entries, err := s.UserIndex(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "l2", entries[0].LinkID)

	entries, err = s.UserIndex(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLinkRecord_Validity(t *testing.T) {
	now := time.Now().UTC()
	r := makeRecord("l1", "alice", now)

	assert.True(t, r.Valid(now))
	assert.True(t, r.Valid(now.Add(59*time.Minute)))

	// Expiry boundary is exclusive: at the exact instant the link is gone.
	assert.False(t, r.Valid(now.Add(time.Hour)))
	assert.True(t, r.Expired(now.Add(time.Hour)))

	r.IsActive = false
	assert.False(t, r.Valid(now))
}
