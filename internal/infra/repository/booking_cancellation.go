package repository

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingCancellationQueries interface {
	InsertBookingCancellation(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingCancellationParams) error
}

type BookingCancellationRepository struct {
	queries BookingCancellationQueries
}

func NewBookingCancellationRepository(queries BookingCancellationQueries) *BookingCancellationRepository {
	return &BookingCancellationRepository{
		queries: queries,
	}
}

// Record fails with KindDuplicateKey when the booking was already cancelled.
func (r *BookingCancellationRepository) Record(ctx context.Context, tx sqlc.DBTX, holdID uuid.UUID, at time.Time) error {
	if err := r.queries.InsertBookingCancellation(ctx, tx, sqlc.InsertBookingCancellationParams{
		HoldID:      holdID,
		CancelledAt: pgconv.TimeToPgtype(at),
	}); err != nil {
		return infra.WrapRepoErr("failed to record booking cancellation", err)
	}
	return nil
}
