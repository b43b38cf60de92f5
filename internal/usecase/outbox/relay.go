package outbox

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

type Publisher interface {
	Publish(ctx context.Context, msg shared.OutboxMessage) error
}

// Relay moves committed outbox rows to the publisher. Delivery is at least
// once: a crash between publish and commit republishes the batch.
type Relay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	batchSize int
	interval  time.Duration
	logger    *slog.Logger
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.OutboxConfig, logger *slog.Logger) *Relay {
	return &Relay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		batchSize: cfg.BatchSize,
		interval:  cfg.PollInterval,
		logger:    logger,
	}
}

// RunOnce publishes one claimed batch in id order and stops at the first
// failure; unpublished rows stay for the next tick.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	var (
		published  int
		publishErr error
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published, publishErr = 0, nil

		msgs, err := tx.Outbox().ClaimBatch(ctx, tx.DB(), r.batchSize)
		if err != nil {
			return err
		}

		ids := make([]int64, 0, len(msgs))
		for _, msg := range msgs {
			if perr := r.publisher.Publish(ctx, msg); perr != nil {
				publishErr = perr
				break
			}
			ids = append(ids, msg.ID)
		}
		if err := tx.Outbox().MarkPublished(ctx, tx.DB(), ids, r.clock.Now()); err != nil {
			return err
		}
		published = len(ids)
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return published, publishErr
}

func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.InfoContext(ctx, "outbox relay started", slog.Duration("interval", r.interval))
	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "outbox relay stopped")
			return
		case <-ticker.C:
			n, err := r.RunOnce(ctx)
			if err != nil {
				r.logger.ErrorContext(ctx, "outbox relay tick failed",
					slog.Int("published", n),
					slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				r.logger.DebugContext(ctx, "outbox events published", slog.Int("published", n))
			}
		}
	}
}
