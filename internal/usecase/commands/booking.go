package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type BookingCommands interface {
	// Commit converts an active hold's held units into booked units after a
	// successful payment.
	Commit(ctx context.Context, holdID uuid.UUID) (*shared.BookingReady, error)
	// CancelBooking returns the booked units of a completed hold.
	CancelBooking(ctx context.Context, holdID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

func (uc *bookingCommandsImpl) Commit(ctx context.Context, holdID uuid.UUID) (ready *shared.BookingReady, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.Commit")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("hold.id", holdID.String()))

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, derr := tx.Holds().GetForUpdate(ctx, tx.DB(), holdID)
		if derr != nil {
			return derr
		}

		now := uc.clock.Now()
		if derr = h.Complete(now); derr != nil {
			return derr
		}

		ok, derr := tx.Ledger().CommitBooking(ctx, tx.DB(), h.Lines(), h.Stay())
		if derr != nil {
			return derr
		}
		if !ok {
			return errs.Wrapf(errs.ErrHoldNotActive, "held units of hold %s no longer present", holdID)
		}

		if derr = tx.Holds().SaveTransition(ctx, tx.DB(), h); derr != nil {
			return derr
		}

		event := shared.NewBookingReady(h, now)
		msg, derr := shared.NewOutboxMessage(h.ID(), shared.EventBookingReady, event, now)
		if derr != nil {
			return derr
		}
		if _, derr = tx.Outbox().Append(ctx, tx.DB(), msg); derr != nil {
			return derr
		}

		ready = &event
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	uc.logger.InfoContext(ctx, "booking committed",
		slog.String("hold_id", holdID.String()),
		slog.String("total_price", ready.TotalPrice),
		slog.String("currency", ready.Currency))
	return ready, nil
}

func (uc *bookingCommandsImpl) CancelBooking(ctx context.Context, holdID uuid.UUID) (err error) {
	ctx, span := startSpan(ctx, "BookingCommands.CancelBooking")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("hold.id", holdID.String()))

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, derr := tx.Holds().GetForUpdate(ctx, tx.DB(), holdID)
		if derr != nil {
			return derr
		}
		if derr = h.EnsureCompleted(); derr != nil {
			return derr
		}

		now := uc.clock.Now()
		if derr = tx.Cancellations().Record(ctx, tx.DB(), h.ID(), now); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, errs.ErrBookingAlreadyCancelled)
			}
			return derr
		}

		adj, derr := tx.Ledger().ReleaseBooking(ctx, tx.DB(), h.Lines(), h.Stay())
		if derr != nil {
			return derr
		}
		if !adj.IsClean() {
			uc.logger.WarnContext(ctx, "booking cancelled with inventory anomalies",
				slog.String("hold_id", holdID.String()),
				slog.Int("rows", adj.Rows),
				slog.Int("clamped", adj.Clamped),
				slog.Int("missing", adj.Missing))
		}

		msg, derr := shared.NewOutboxMessage(h.ID(), shared.EventBookingCancelled, shared.BookingCancelled{
			HoldID:      h.ID(),
			UserID:      h.UserID(),
			HotelID:     h.HotelID(),
			CancelledAt: now,
		}, now)
		if derr != nil {
			return derr
		}
		_, derr = tx.Outbox().Append(ctx, tx.DB(), msg)
		return derr
	})
	if err != nil {
		return classify(err)
	}

	uc.logger.InfoContext(ctx, "booking cancelled", slog.String("hold_id", holdID.String()))
	return nil
}
