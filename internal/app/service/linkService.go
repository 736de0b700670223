package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/akraev/reposhare/internal/models"
	"github.com/akraev/reposhare/internal/storage"
)

// Sentinel errors for lifecycle operations. Handlers map these to
// precise HTTP statuses instead of collapsing not-found and forbidden
// into one signal.
var (
	ErrLinkNotFound    = errors.New("link not found")
	ErrNotOwner        = errors.New("requester is not the link owner")
	ErrLinkInactive    = errors.New("link is no longer active")
	ErrInvalidDuration = errors.New("duration must be positive")
)

// FailureReason says why a validation did not succeed.
type FailureReason string

const (
	ReasonNone        FailureReason = ""
	ReasonNotFound    FailureReason = "not_found"
	ReasonDeactivated FailureReason = "deactivated"
	ReasonExpired     FailureReason = "expired"
	ReasonUnavailable FailureReason = "unavailable"
)

// ValidationResult is the structured outcome of a link validation.
// Failures are carried here, never as a returned error, so callers can
// branch without exception handling.
type ValidationResult struct {
	Valid         bool
	Link          *storage.LinkRecord
	Reason        FailureReason
	TimeRemaining time.Duration
}

// LinkStats holds per-link counters. Reading them is observation-only:
// unlike a validation, it never bumps the access count.
type LinkStats struct {
	AccessCount    uint64
	TimeRemaining  time.Duration
	IsActive       bool
	CreatedAt      time.Time
	ExpiresAt      time.Time
	LastAccessedAt *time.Time
}

// SystemStats holds store-wide counters.
type SystemStats struct {
	TotalLinks    int
	ActiveLinks   int
	ExpiredLinks  int
	TotalAccesses uint64
}

// LinkService is the shared-link lifecycle engine. Every operation
// re-reads the record from the store; no mutable copy survives a call.
type LinkService struct {
	store   Storage
	logger  *zap.Logger
	baseURL string
	clock   Clock
	ids     IDGenerator
}

// NewLink builds an engine with the wall clock and the default id
// generator.
func NewLink(store Storage, logger *zap.Logger, baseURL string) *LinkService {
	clock := SystemClock{}
	return NewLinkWithClock(store, logger, baseURL, clock, NewLinkIDGenerator(clock))
}

// NewLinkWithClock injects clock and id generation; used by tests to
// simulate time advance.
func NewLinkWithClock(store Storage, logger *zap.Logger, baseURL string, clock Clock, ids IDGenerator) *LinkService {
	return &LinkService{
		store:   store,
		logger:  logger,
		baseURL: baseURL,
		clock:   clock,
		ids:     ids,
	}
}

func (s *LinkService) PingContext(ctx context.Context) error {
	return s.store.PingContext(ctx)
}

// CreateLink freezes a filtered snapshot of repos into a new link and
// returns the record plus the shareable URL. A store failure here is a
// hard error: a link that silently fails to persist would be handed to
// a third party and never resolve.
func (s *LinkService) CreateLink(ctx context.Context, ownerID, ownerName string, repos []models.Repository, includePrivate bool, durationHours int) (*storage.LinkRecord, string, error) {
	if durationHours <= 0 {
		return nil, "", ErrInvalidDuration
	}

	now := s.clock.Now()
	record := storage.LinkRecord{
		ID:             s.ids.NewID(),
		OwnerID:        ownerID,
		OwnerName:      ownerName,
		Repositories:   models.FilterPrivate(repos, includePrivate),
		IncludePrivate: includePrivate,
		CreatedAt:      now,
		ExpiresAt:      now.Add(time.Duration(durationHours) * time.Hour),
		AccessCount:    0,
		IsActive:       true,
	}

	if err := s.store.Put(ctx, record); err != nil {
		return nil, "", fmt.Errorf("persist link: %w", err)
	}

	if err := s.store.AppendUserIndex(ctx, ownerID, storage.IndexEntry{LinkID: record.ID, CreatedAt: now}); err != nil {
		// The record write landed but the index write did not; undo the
		// record so the two namespaces stay consistent.
		if delErr := s.store.Delete(ctx, record.ID); delErr != nil {
			s.logger.Error("cannot roll back link after index failure",
				zap.String("id", record.ID), zap.Error(delErr))
		}
		return nil, "", fmt.Errorf("index link: %w", err)
	}

	return &record, s.baseURL + "/share/" + record.ID, nil
}

// ValidateLink resolves a link for a third-party viewer. A successful
// validation counts as an access; crossing the expiry boundary durably
// deactivates the record so it can never flip back to valid.
func (s *LinkService) ValidateLink(ctx context.Context, id string) ValidationResult {
	record, err := s.store.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ValidationResult{Reason: ReasonNotFound}
	}
	if err != nil {
		s.logger.Error("cannot read link", zap.String("id", id), zap.Error(err))
		return ValidationResult{Reason: ReasonUnavailable}
	}

	if !record.IsActive {
		return ValidationResult{Reason: ReasonDeactivated}
	}

	now := s.clock.Now()
	if record.Expired(now) {
		record.IsActive = false
		if err := s.store.Put(ctx, *record); err != nil {
			s.logger.Error("cannot persist expiry transition", zap.String("id", id), zap.Error(err))
		}
		return ValidationResult{Reason: ReasonExpired, TimeRemaining: 0}
	}

	record.AccessCount++
	record.LastAccessedAt = &now
	if err := s.store.Put(ctx, *record); err != nil {
		s.logger.Error("cannot persist access bookkeeping", zap.String("id", id), zap.Error(err))
		return ValidationResult{Reason: ReasonUnavailable}
	}

	return ValidationResult{
		Valid:         true,
		Link:          record,
		TimeRemaining: record.ExpiresAt.Sub(now),
	}
}

// ExtendLink moves the expiry forward by additionalHours. The link must
// still be valid: extending an expired or deactivated record is a no-op
// rather than a silent revival. Ownership is enforced when requesterID
// is supplied.
func (s *LinkService) ExtendLink(ctx context.Context, id string, additionalHours int, requesterID string) (bool, error) {
	if additionalHours <= 0 {
		return false, ErrInvalidDuration
	}

	record, err := s.store.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return false, ErrLinkNotFound
	}
	if err != nil {
		return false, err
	}

	if requesterID != "" && requesterID != record.OwnerID {
		return false, ErrNotOwner
	}
	if !record.Valid(s.clock.Now()) {
		return false, ErrLinkInactive
	}

	record.ExpiresAt = record.ExpiresAt.Add(time.Duration(additionalHours) * time.Hour)
	if err := s.store.Put(ctx, *record); err != nil {
		return false, err
	}
	return true, nil
}

// DeactivateLink soft-deletes: the record stays in the store but stops
// resolving. Idempotent.
func (s *LinkService) DeactivateLink(ctx context.Context, id string) (bool, error) {
	record, err := s.store.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return false, ErrLinkNotFound
	}
	if err != nil {
		return false, err
	}

	if !record.IsActive {
		return true, nil
	}

	record.IsActive = false
	if err := s.store.Put(ctx, *record); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteLink removes the record and its index entry. Ownership is
// enforced when requesterID is supplied.
func (s *LinkService) DeleteLink(ctx context.Context, id string, requesterID string) (bool, error) {
	record, err := s.store.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return false, ErrLinkNotFound
	}
	if err != nil {
		return false, err
	}

	if requesterID != "" && requesterID != record.OwnerID {
		return false, ErrNotOwner
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return false, err
	}
	if err := s.store.RemoveUserIndex(ctx, record.OwnerID, id); err != nil {
		return false, err
	}
	return true, nil
}

// LinksByOwner resolves the owner's index, tolerating index/store drift
// (entries whose record is gone are skipped) and hiding inactive links.
// Newest first.
func (s *LinkService) LinksByOwner(ctx context.Context, ownerID string) ([]storage.LinkRecord, error) {
	entries, err := s.store.UserIndex(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	links := make([]storage.LinkRecord, 0, len(entries))
	for _, e := range entries {
		record, err := s.store.Get(ctx, e.LinkID)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if !record.IsActive {
			continue
		}
		links = append(links, *record)
	}

	sort.Slice(links, func(i, j int) bool {
		return links[i].CreatedAt.After(links[j].CreatedAt)
	})
	return links, nil
}

// LinkStats reads a link's counters without touching them. Only the
// owner may read them; ownership is enforced when requesterID is
// supplied.
func (s *LinkService) LinkStats(ctx context.Context, id string, requesterID string) (*LinkStats, error) {
	record, err := s.store.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}

	if requesterID != "" && requesterID != record.OwnerID {
		return nil, ErrNotOwner
	}

	remaining := record.ExpiresAt.Sub(s.clock.Now())
	if remaining < 0 {
		remaining = 0
	}

	return &LinkStats{
		AccessCount:    record.AccessCount,
		TimeRemaining:  remaining,
		IsActive:       record.IsActive,
		CreatedAt:      record.CreatedAt,
		ExpiresAt:      record.ExpiresAt,
		LastAccessedAt: record.LastAccessedAt,
	}, nil
}

// SystemStats is a pure scan; it never mutates.
func (s *LinkService) SystemStats(ctx context.Context) (SystemStats, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return SystemStats{}, err
	}

	now := s.clock.Now()
	stats := SystemStats{}
	for i := range records {
		stats.TotalLinks++
		stats.TotalAccesses += records[i].AccessCount
		if records[i].Valid(now) {
			stats.ActiveLinks++
		} else {
			stats.ExpiredLinks++
		}
	}
	return stats, nil
}

var _ LinkServiceIface = (*LinkService)(nil)
