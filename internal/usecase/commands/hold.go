package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/hold"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type CreateHoldInput struct {
	UserID         uuid.UUID
	HotelID        uuid.UUID
	CheckIn        inventory.StayDate
	CheckOut       inventory.StayDate
	Lines          []inventory.RoomLine
	NumberOfGuests int
	Currency       string
}

type ReleaseResult struct {
	HoldID uuid.UUID
	Status hold.Status
}

type HoldCommands interface {
	Create(ctx context.Context, in CreateHoldInput) (*queries.HoldView, error)
	Release(ctx context.Context, holdID, requesterID uuid.UUID, reason hold.ReleaseReason) (*ReleaseResult, error)
}

type holdCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	ttl    time.Duration
	logger *slog.Logger
}

func NewHoldCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.HoldConfig, logger *slog.Logger) HoldCommands {
	return &holdCommandsImpl{
		uow:    uow,
		clock:  clk,
		ttl:    cfg.TTL,
		logger: logger,
	}
}

// Create reserves the units and inserts the hold in one transaction, so a
// hold row never exists without its held units.
func (uc *holdCommandsImpl) Create(ctx context.Context, in CreateHoldInput) (view *queries.HoldView, err error) {
	ctx, span := startSpan(ctx, "HoldCommands.Create")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(
		attribute.String("hotel.id", in.HotelID.String()),
		attribute.String("stay.check_in", in.CheckIn.String()),
		attribute.String("stay.check_out", in.CheckOut.String()),
	)

	stay, err := inventory.NewDateRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	lines, err := inventory.NormalizeLines(in.Lines)
	if err != nil {
		return nil, err
	}
	if err = hold.ValidateGuests(in.NumberOfGuests); err != nil {
		return nil, err
	}
	if err = hold.ValidateCurrency(in.Currency); err != nil {
		return nil, err
	}

	var created *hold.Hold
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, derr := tx.Ledger().TryReserve(ctx, tx.DB(), in.HotelID, lines, stay)
		if derr != nil {
			return derr
		}
		if !ok {
			return errs.Wrapf(errs.ErrRoomsNotAvailable, "hotel %s %s", in.HotelID, stay)
		}

		// priced from the rows just locked by the reservation
		rates, derr := tx.Ledger().NightlyRates(ctx, tx.DB(), in.HotelID, inventory.RoomTypeIDs(lines), stay)
		if derr != nil {
			return derr
		}
		total, derr := inventory.QuoteTotal(lines, stay, rates)
		if derr != nil {
			return derr
		}

		h, derr := hold.New(hold.NewParams{
			UserID:         in.UserID,
			HotelID:        in.HotelID,
			Stay:           stay,
			Lines:          lines,
			NumberOfGuests: in.NumberOfGuests,
			TotalPrice:     total,
			Currency:       in.Currency,
		}, uc.clock.Now(), uc.ttl)
		if derr != nil {
			return derr
		}
		if derr = tx.Holds().Create(ctx, tx.DB(), h); derr != nil {
			return derr
		}
		created = h
		return nil
	})
	if err != nil {
		err = classify(err)
		if errs.Is(err, errs.ErrRoomsNotAvailable) {
			uc.logger.InfoContext(ctx, "rooms not available",
				slog.String("hotel_id", in.HotelID.String()),
				slog.String("stay", stay.String()))
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("hold.id", created.ID().String()))
	uc.logger.InfoContext(ctx, "hold created",
		slog.String("hold_id", created.ID().String()),
		slog.String("user_id", created.UserID().String()),
		slog.String("total_price", created.TotalPrice().StringFixed(2)),
		slog.Time("expires_at", created.ExpiresAt()))
	return queries.NewHoldView(created, uc.clock.Now()), nil
}

// Release validates under the hold's row lock, so a user cancel, a reaper
// sweep and a booking commit racing on one hold produce exactly one winner.
func (uc *holdCommandsImpl) Release(ctx context.Context, holdID, requesterID uuid.UUID, reason hold.ReleaseReason) (result *ReleaseResult, err error) {
	ctx, span := startSpan(ctx, "HoldCommands.Release")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(
		attribute.String("hold.id", holdID.String()),
		attribute.String("release.reason", reason.String()),
	)

	if _, err = reason.TargetStatus(); err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, derr := tx.Holds().GetForUpdate(ctx, tx.DB(), holdID)
		if derr != nil {
			return derr
		}
		if !h.OwnedBy(requesterID) {
			return errs.Wrapf(errs.ErrForbidden, "hold %s belongs to another user", holdID)
		}

		now := uc.clock.Now()
		if derr = h.Release(reason, now); derr != nil {
			return derr
		}

		adj, derr := tx.Ledger().Release(ctx, tx.DB(), h.Lines(), h.Stay())
		if derr != nil {
			return derr
		}
		if !adj.IsClean() {
			uc.logger.WarnContext(ctx, "hold released with inventory anomalies",
				slog.String("hold_id", holdID.String()),
				slog.Int("rows", adj.Rows),
				slog.Int("clamped", adj.Clamped),
				slog.Int("missing", adj.Missing))
		}

		if derr = tx.Holds().SaveTransition(ctx, tx.DB(), h); derr != nil {
			return derr
		}

		if reason == hold.ReasonExpired {
			msg, derr := shared.NewOutboxMessage(h.ID(), shared.EventHoldExpired, shared.HoldExpired{
				HoldID:    h.ID(),
				UserID:    h.UserID(),
				HotelID:   h.HotelID(),
				ExpiresAt: h.ExpiresAt(),
				ExpiredAt: now,
			}, now)
			if derr != nil {
				return derr
			}
			if _, derr = tx.Outbox().Append(ctx, tx.DB(), msg); derr != nil {
				return derr
			}
		}

		result = &ReleaseResult{HoldID: h.ID(), Status: h.Status()}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	uc.logger.InfoContext(ctx, "hold released",
		slog.String("hold_id", holdID.String()),
		slog.String("reason", reason.String()),
		slog.String("status", result.Status.String()))
	return result, nil
}
