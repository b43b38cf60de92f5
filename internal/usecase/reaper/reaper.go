package reaper

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/hold"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// stackLines caps the stack trace attached to failure logs.
const stackLines = 10

type ExpiredHoldFinder interface {
	FindExpired(ctx context.Context, now time.Time, limit int) ([]queries.ExpiredHold, error)
}

type HoldReleaser interface {
	Release(ctx context.Context, holdID, requesterID uuid.UUID, reason hold.ReleaseReason) (*commands.ReleaseResult, error)
}

type SweepResult struct {
	Found   int
	Expired int
	// Skipped holds were completed or released by someone else first.
	Skipped int
	Failed  int
}

// ExpiryReaper releases holds past their deadline through the same path as a
// user cancellation. Several instances may sweep concurrently; the release
// re-checks the hold under its row lock.
type ExpiryReaper struct {
	finder    ExpiredHoldFinder
	releaser  HoldReleaser
	uow       shared.UnitOfWork
	clock     clock.Clock
	batchSize int
	interval  time.Duration
	retention int
	logger    *slog.Logger

	lastPrune inventory.StayDate
}

func NewExpiryReaper(
	finder ExpiredHoldFinder,
	releaser HoldReleaser,
	uow shared.UnitOfWork,
	clk clock.Clock,
	cfg config.ReaperConfig,
	logger *slog.Logger,
) *ExpiryReaper {
	return &ExpiryReaper{
		finder:    finder,
		releaser:  releaser,
		uow:       uow,
		clock:     clk,
		batchSize: cfg.BatchSize,
		interval:  cfg.Interval,
		retention: cfg.RetentionDays,
		logger:    logger,
	}
}

// RunOnce sweeps one batch. A failing hold is logged and counted; it never
// stops the rest of the batch.
func (r *ExpiryReaper) RunOnce(ctx context.Context) (SweepResult, error) {
	var result SweepResult

	expired, err := r.finder.FindExpired(ctx, r.clock.Now(), r.batchSize)
	if err != nil {
		return result, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	result.Found = len(expired)

	for _, candidate := range expired {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		_, rerr := r.releaser.Release(ctx, candidate.ID, candidate.UserID, hold.ReasonExpired)
		switch {
		case rerr == nil:
			result.Expired++
		case errs.Is(rerr, errs.ErrHoldNotActive), errs.Is(rerr, errs.ErrHoldNotFound):
			result.Skipped++
		default:
			result.Failed++
			r.logger.ErrorContext(ctx, "failed to expire hold",
				slog.String("hold_id", candidate.ID.String()),
				slog.Time("expires_at", candidate.ExpiresAt),
				slog.String("error", rerr.Error()),
				slog.Any("stack", errs.ExtractStackLines(rerr, stackLines)))
		}
	}
	return result, nil
}

// PruneElapsed deletes inventory nights older than the retention window.
func (r *ExpiryReaper) PruneElapsed(ctx context.Context) (int64, error) {
	before := inventory.StayDateOf(r.clock.Now()).AddDays(-r.retention)

	var pruned int64
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Ledger().PruneElapsed(ctx, tx.DB(), before)
		if derr != nil {
			return derr
		}
		pruned = n
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return pruned, nil
}

func (r *ExpiryReaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.InfoContext(ctx, "expiry reaper started",
		slog.Duration("interval", r.interval),
		slog.Int("batch_size", r.batchSize))
	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "expiry reaper stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *ExpiryReaper) tick(ctx context.Context) {
	res, err := r.RunOnce(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "expiry sweep failed",
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, stackLines)))
	} else if res.Found > 0 {
		r.logger.InfoContext(ctx, "expiry sweep finished",
			slog.Int("found", res.Found),
			slog.Int("expired", res.Expired),
			slog.Int("skipped", res.Skipped),
			slog.Int("failed", res.Failed))
	}

	if r.retention <= 0 {
		return
	}
	today := inventory.StayDateOf(r.clock.Now())
	if today.Equal(r.lastPrune) {
		return
	}
	n, err := r.PruneElapsed(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "inventory prune failed", slog.String("error", err.Error()))
		return
	}
	r.lastPrune = today
	if n > 0 {
		r.logger.InfoContext(ctx, "elapsed inventory pruned", slog.Int64("rows", n))
	}
}
