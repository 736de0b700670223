package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/akraev/reposhare/internal/storage"
)

// Repo is the slice of the store the sweeper needs.
type Repo interface {
	List(context.Context) ([]storage.LinkRecord, error)
	ReplaceAll(context.Context, []storage.LinkRecord) error
	PruneUserIndex(context.Context, map[string]struct{}) error
}

// Clock supplies the sweep's notion of now; injected for tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// CleanupWorker reclaims expired and deactivated links. Each sweep is a
// full mark-and-rewrite: partition every record into keep/reclaim,
// rewrite the store with the keep set, then prune the owner index down
// to surviving ids. Acceptable at this record count; a larger deployment
// would index by expiry instead.
type CleanupWorker struct {
	repo     Repo
	logger   *zap.Logger
	interval time.Duration
	clock    Clock
}

func NewCleanupWorker(logger *zap.Logger, repo Repo, interval time.Duration) *CleanupWorker {
	return &CleanupWorker{
		repo:     repo,
		logger:   logger,
		interval: interval,
		clock:    systemClock{},
	}
}

// NewCleanupWorkerWithClock is used by tests to control time.
func NewCleanupWorkerWithClock(logger *zap.Logger, repo Repo, interval time.Duration, clock Clock) *CleanupWorker {
	w := NewCleanupWorker(logger, repo, interval)
	w.clock = clock
	return w
}

// Run sweeps once eagerly, then on every tick until ctx is cancelled.
func (w *CleanupWorker) Run(ctx context.Context) {
	w.logger.Info("cleanup worker started", zap.Duration("interval", w.interval))

	w.sweepAndLog(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cleanup worker stopped")
			return
		case <-ticker.C:
			w.sweepAndLog(ctx)
		}
	}
}

func (w *CleanupWorker) sweepAndLog(ctx context.Context) {
	reclaimed, err := w.Sweep(ctx)
	if err != nil {
		w.logger.Error("sweep failed", zap.Error(err))
		return
	}
	if reclaimed > 0 {
		w.logger.Info("reclaimed links", zap.Int("count", reclaimed))
	}
}

// Sweep runs one garbage collection pass and returns the number of
// records reclaimed.
func (w *CleanupWorker) Sweep(ctx context.Context) (int, error) {
	records, err := w.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	now := w.clock.Now()
	keep := make([]storage.LinkRecord, 0, len(records))
	keepIDs := make(map[string]struct{}, len(records))

	for _, r := range records {
		if r.Valid(now) {
			keep = append(keep, r)
			keepIDs[r.ID] = struct{}{}
		}
	}

	reclaimed := len(records) - len(keep)
	if reclaimed == 0 {
		return 0, nil
	}

	if err := w.repo.ReplaceAll(ctx, keep); err != nil {
		return 0, err
	}
	if err := w.repo.PruneUserIndex(ctx, keepIDs); err != nil {
		return 0, err
	}

	return reclaimed, nil
}
