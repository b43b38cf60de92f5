package queries

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/inventory"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityCache stores advisory answers for a short time. Errors are
// logged and otherwise ignored.
type AvailabilityCache interface {
	Lookup(ctx context.Context, lines []inventory.RoomLine, stay inventory.DateRange) (available bool, found bool, err error)
	Store(ctx context.Context, lines []inventory.RoomLine, stay inventory.DateRange, available bool) error
}

type AvailabilityQueries interface {
	// CheckAvailability is a pre-flight hint; HoldCommands.Create is the
	// binding check.
	CheckAvailability(ctx context.Context, roomTypeIDs []uuid.UUID, checkIn, checkOut inventory.StayDate, quantities []int) (bool, error)
}

type availabilityQueriesImpl struct {
	uow    shared.UnitOfWork
	ledger shared.InventoryLedger
	cache  AvailabilityCache
	logger *slog.Logger
}

// NewAvailabilityQueries accepts a nil cache.
func NewAvailabilityQueries(uow shared.UnitOfWork, ledger shared.InventoryLedger, cache AvailabilityCache, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:    uow,
		ledger: ledger,
		cache:  cache,
		logger: logger,
	}
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, roomTypeIDs []uuid.UUID, checkIn, checkOut inventory.StayDate, quantities []int) (bool, error) {
	if len(roomTypeIDs) != len(quantities) {
		return false, errs.Wrapf(errs.ErrInvalidRoomLines, "%d room types but %d quantities", len(roomTypeIDs), len(quantities))
	}
	if len(roomTypeIDs) == 0 {
		return false, nil
	}

	raw := make([]inventory.RoomLine, len(roomTypeIDs))
	for i, id := range roomTypeIDs {
		raw[i] = inventory.RoomLine{RoomTypeID: id, Quantity: quantities[i]}
	}
	lines, err := inventory.NormalizeLines(raw)
	if err != nil {
		return false, err
	}

	stay, err := inventory.NewDateRange(checkIn, checkOut)
	if err != nil {
		// empty or inverted ranges are answered, not rejected
		return false, nil
	}

	if q.cache != nil {
		available, found, cerr := q.cache.Lookup(ctx, lines, stay)
		if cerr != nil {
			q.logger.WarnContext(ctx, "availability cache lookup failed", slog.String("error", cerr.Error()))
		} else if found {
			return available, nil
		}
	}

	var available bool
	err = q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var derr error
		available, derr = q.ledger.CheckAvailability(ctx, db, lines, stay)
		return derr
	})
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if q.cache != nil {
		if cerr := q.cache.Store(ctx, lines, stay, available); cerr != nil {
			q.logger.WarnContext(ctx, "availability cache store failed", slog.String("error", cerr.Error()))
		}
	}
	return available, nil
}
