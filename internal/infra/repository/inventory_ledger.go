package repository

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const ledgerSavepoint = "inventory_ledger"

type InventoryLedgerQueries interface {
	ReserveHeldUnits(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveHeldUnitsParams) (int64, error)
	ReleaseHeldUnits(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseHeldUnitsParams) (int32, error)
	CommitHeldUnits(ctx context.Context, db sqlc.DBTX, arg sqlc.CommitHeldUnitsParams) (int64, error)
	ReleaseBookedUnits(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseBookedUnitsParams) (int32, error)
	ListInventoryRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListInventoryRangeParams) ([]sqlc.RoomInventory, error)
	ListNightlyRates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNightlyRatesParams) ([]sqlc.ListNightlyRatesRow, error)
	DeleteElapsedInventory(ctx context.Context, db sqlc.DBTX, before pgtype.Date) (int64, error)
}

// InventoryLedger applies per-night conditional updates in lock order
// (room type, then date). Every mutation runs inside its own savepoint, so a
// refused or failed batch leaves the caller's transaction untouched.
type InventoryLedger struct {
	queries InventoryLedgerQueries
	logger  *slog.Logger
}

func NewInventoryLedger(queries InventoryLedgerQueries, logger *slog.Logger) *InventoryLedger {
	return &InventoryLedger{
		queries: queries,
		logger:  logger,
	}
}

func (l *InventoryLedger) TryReserve(ctx context.Context, tx sqlc.DBTX, hotelID uuid.UUID, lines []inventory.RoomLine, stay inventory.DateRange) (bool, error) {
	cells := inventory.Cells(lines, stay)
	if len(cells) == 0 {
		return false, nil
	}

	return l.inSavepoint(ctx, tx, func() (bool, error) {
		for _, c := range cells {
			n, err := l.queries.ReserveHeldUnits(ctx, tx, sqlc.ReserveHeldUnitsParams{
				Quantity:   pgconv.IntToInt32(c.Quantity),
				RoomTypeID: c.RoomTypeID,
				StayDate:   converter.DateToInfra(c.Date),
				HotelID:    hotelID,
			})
			if err != nil {
				return false, infra.WrapRepoErr("failed to reserve held units", err)
			}
			if n != 1 {
				l.logger.DebugContext(ctx, "reservation refused",
					slog.String("room_type_id", c.RoomTypeID.String()),
					slog.String("stay_date", c.Date.String()),
					slog.Int("quantity", c.Quantity))
				return false, nil
			}
		}
		return true, nil
	})
}

func (l *InventoryLedger) CommitBooking(ctx context.Context, tx sqlc.DBTX, lines []inventory.RoomLine, stay inventory.DateRange) (bool, error) {
	cells := inventory.Cells(lines, stay)
	if len(cells) == 0 {
		return false, nil
	}

	return l.inSavepoint(ctx, tx, func() (bool, error) {
		for _, c := range cells {
			n, err := l.queries.CommitHeldUnits(ctx, tx, sqlc.CommitHeldUnitsParams{
				Quantity:   pgconv.IntToInt32(c.Quantity),
				RoomTypeID: c.RoomTypeID,
				StayDate:   converter.DateToInfra(c.Date),
			})
			if err != nil {
				return false, infra.WrapRepoErr("failed to commit held units", err)
			}
			if n != 1 {
				l.logger.WarnContext(ctx, "held units missing at commit",
					slog.String("room_type_id", c.RoomTypeID.String()),
					slog.String("stay_date", c.Date.String()),
					slog.Int("quantity", c.Quantity))
				return false, nil
			}
		}
		return true, nil
	})
}

// Release returns held units, clamping each counter at zero.
func (l *InventoryLedger) Release(ctx context.Context, tx sqlc.DBTX, lines []inventory.RoomLine, stay inventory.DateRange) (inventory.Adjustment, error) {
	return l.decrement(ctx, tx, "held_units", inventory.Cells(lines, stay), func(c inventory.Cell) (int32, error) {
		return l.queries.ReleaseHeldUnits(ctx, tx, sqlc.ReleaseHeldUnitsParams{
			Quantity:   pgconv.IntToInt32(c.Quantity),
			RoomTypeID: c.RoomTypeID,
			StayDate:   converter.DateToInfra(c.Date),
		})
	})
}

// ReleaseBooking returns booked units of a cancelled booking, clamping at zero.
func (l *InventoryLedger) ReleaseBooking(ctx context.Context, tx sqlc.DBTX, lines []inventory.RoomLine, stay inventory.DateRange) (inventory.Adjustment, error) {
	return l.decrement(ctx, tx, "booked_units", inventory.Cells(lines, stay), func(c inventory.Cell) (int32, error) {
		return l.queries.ReleaseBookedUnits(ctx, tx, sqlc.ReleaseBookedUnitsParams{
			Quantity:   pgconv.IntToInt32(c.Quantity),
			RoomTypeID: c.RoomTypeID,
			StayDate:   converter.DateToInfra(c.Date),
		})
	})
}

// CheckAvailability is advisory; only TryReserve's predicate is binding.
func (l *InventoryLedger) CheckAvailability(ctx context.Context, db sqlc.DBTX, lines []inventory.RoomLine, stay inventory.DateRange) (bool, error) {
	if len(lines) == 0 || stay.NightCount() < 1 {
		return false, nil
	}

	rows, err := l.queries.ListInventoryRange(ctx, db, sqlc.ListInventoryRangeParams{
		RoomTypeIds: inventory.RoomTypeIDs(lines),
		CheckIn:     converter.DateToInfra(stay.CheckIn()),
		CheckOut:    converter.DateToInfra(stay.CheckOut()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to list inventory range", err)
	}

	records, err := converter.RecordsFromInfra(rows)
	if err != nil {
		return false, infra.WrapRepoErr("failed to convert inventory rows", err, infra.KindDBFailure)
	}
	return inventory.CanAccommodate(records, lines, stay), nil
}

func (l *InventoryLedger) NightlyRates(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID, roomTypeIDs []uuid.UUID, stay inventory.DateRange) ([]inventory.NightlyRate, error) {
	rows, err := l.queries.ListNightlyRates(ctx, db, sqlc.ListNightlyRatesParams{
		HotelID:     hotelID,
		RoomTypeIds: roomTypeIDs,
		CheckIn:     converter.DateToInfra(stay.CheckIn()),
		CheckOut:    converter.DateToInfra(stay.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list nightly rates", err)
	}

	rates, err := converter.NightlyRatesFromInfra(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert nightly rates", err, infra.KindDBFailure)
	}
	return rates, nil
}

// PruneElapsed deletes nights before the given date that hold no units.
func (l *InventoryLedger) PruneElapsed(ctx context.Context, db sqlc.DBTX, before inventory.StayDate) (int64, error) {
	n, err := l.queries.DeleteElapsedInventory(ctx, db, converter.DateToInfra(before))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to prune elapsed inventory", err)
	}
	return n, nil
}

func (l *InventoryLedger) decrement(
	ctx context.Context,
	tx sqlc.DBTX,
	counter string,
	cells []inventory.Cell,
	apply func(inventory.Cell) (int32, error),
) (inventory.Adjustment, error) {
	var adj inventory.Adjustment
	_, err := l.inSavepoint(ctx, tx, func() (bool, error) {
		for _, c := range cells {
			previous, err := apply(c)
			if err != nil {
				if pgconv.IsNoRows(err) {
					adj.Missing++
					l.logger.WarnContext(ctx, "inventory row missing on release",
						slog.String("counter", counter),
						slog.String("room_type_id", c.RoomTypeID.String()),
						slog.String("stay_date", c.Date.String()))
					continue
				}
				return false, infra.WrapRepoErr("failed to decrement "+counter, err)
			}
			adj.Rows++
			if int(previous) < c.Quantity {
				adj.Clamped++
				l.logger.WarnContext(ctx, "inventory counter clamped at zero",
					slog.String("counter", counter),
					slog.String("room_type_id", c.RoomTypeID.String()),
					slog.String("stay_date", c.Date.String()),
					slog.Int("previous", int(previous)),
					slog.Int("quantity", c.Quantity))
			}
		}
		return true, nil
	})
	if err != nil {
		return inventory.Adjustment{}, err
	}
	return adj, nil
}

// inSavepoint rolls back to the savepoint when fn fails or reports false.
func (l *InventoryLedger) inSavepoint(ctx context.Context, tx sqlc.DBTX, fn func() (bool, error)) (bool, error) {
	if _, err := tx.Exec(ctx, "SAVEPOINT "+ledgerSavepoint); err != nil {
		return false, infra.WrapRepoErr("failed to open ledger savepoint", err)
	}

	ok, err := fn()
	if err == nil && ok {
		if _, relErr := tx.Exec(ctx, "RELEASE SAVEPOINT "+ledgerSavepoint); relErr != nil {
			return false, infra.WrapRepoErr("failed to release ledger savepoint", relErr)
		}
		return true, nil
	}

	if _, rbErr := tx.Exec(ctx, "ROLLBACK TO SAVEPOINT "+ledgerSavepoint); rbErr != nil {
		if err != nil {
			l.logger.ErrorContext(ctx, "ledger savepoint rollback failed", slog.String("error", rbErr.Error()))
			return false, err
		}
		return false, infra.WrapRepoErr("failed to roll back ledger savepoint", rbErr)
	}
	if _, relErr := tx.Exec(ctx, "RELEASE SAVEPOINT "+ledgerSavepoint); relErr != nil && err == nil {
		return false, infra.WrapRepoErr("failed to release ledger savepoint", relErr)
	}
	return false, err
}
