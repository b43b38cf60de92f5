package repository

import (
	"context"

	"hotel-booking/internal/domain/hold"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HoldWriteQueries interface {
	InsertHold(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertHoldParams) error
	InsertHoldLine(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertHoldLineParams) error
	GetHoldForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Holds, error)
	ListHoldLines(ctx context.Context, db sqlc.DBTX, holdID uuid.UUID) ([]sqlc.HoldLines, error)
	TransitionHoldStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionHoldStatusParams) (int64, error)
}

type HoldRepository struct {
	queries HoldWriteQueries
}

func NewHoldRepository(queries HoldWriteQueries) *HoldRepository {
	return &HoldRepository{
		queries: queries,
	}
}

func (r *HoldRepository) Create(ctx context.Context, tx sqlc.DBTX, h *hold.Hold) error {
	if err := r.queries.InsertHold(ctx, tx, converter.HoldToInsertParams(h)); err != nil {
		return infra.WrapRepoErr("failed to create hold", err)
	}
	for _, line := range converter.HoldLinesToInsertParams(h) {
		if err := r.queries.InsertHoldLine(ctx, tx, line); err != nil {
			return infra.WrapRepoErr("failed to create hold line", err)
		}
	}
	return nil
}

func (r *HoldRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*hold.Hold, error) {
	row, err := r.queries.GetHoldForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hold not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock hold", err)
	}

	lines, err := r.queries.ListHoldLines(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hold lines", err)
	}

	h, err := converter.HoldFromInfra(row, lines)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert hold", err, infra.KindDBFailure)
	}
	return h, nil
}

// SaveTransition only matches rows still active; a miss is a conflict.
func (r *HoldRepository) SaveTransition(ctx context.Context, tx sqlc.DBTX, h *hold.Hold) error {
	if !h.Status().IsTerminal() {
		return infra.NewRepoErr(infra.KindConflict, "hold "+h.ID().String()+" has no terminal status to save")
	}

	n, err := r.queries.TransitionHoldStatus(ctx, tx, sqlc.TransitionHoldStatusParams{
		NewStatus:  h.Status().String(),
		ReleasedAt: pgconv.TimePtrToPgtype(h.ReleasedAt()),
		ID:         h.ID(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to transition hold", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindConflict, "hold "+h.ID().String()+" is no longer active")
	}
	return nil
}
