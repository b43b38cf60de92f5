package readstore

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
)

type HoldReadQueries interface {
	GetHold(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Holds, error)
	ListHoldLines(ctx context.Context, db sqlc.DBTX, holdID uuid.UUID) ([]sqlc.HoldLines, error)
	ListActiveHoldsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveHoldsByUserParams) ([]sqlc.Holds, error)
	ListHoldLinesByHoldIDs(ctx context.Context, db sqlc.DBTX, holdIds []uuid.UUID) ([]sqlc.HoldLines, error)
	ListExpiredHolds(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpiredHoldsParams) ([]sqlc.ListExpiredHoldsRow, error)
}

type HoldReadStore struct {
	queries HoldReadQueries
	db      sqlc.DBTX
}

func NewHoldReadStore(queries HoldReadQueries, db sqlc.DBTX) *HoldReadStore {
	return &HoldReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HoldReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HoldView, error) {
	row, err := r.queries.GetHold(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hold not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hold by id", err)
	}

	lines, err := r.queries.ListHoldLines(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hold lines", err)
	}

	view, err := mapHoldRow(row)
	if err != nil {
		return nil, err
	}
	view.Lines = mapHoldLines(lines)
	return view, nil
}

// ListActiveByUser loads lines for the whole page in one query.
func (r *HoldReadStore) ListActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*queries.HoldView, error) {
	rows, err := r.queries.ListActiveHoldsByUser(ctx, r.db, sqlc.ListActiveHoldsByUserParams{
		UserID: userID,
		Now:    pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active holds by user", err)
	}
	if len(rows) == 0 {
		return []*queries.HoldView{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	lineRows, err := r.queries.ListHoldLinesByHoldIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hold lines by hold ids", err)
	}
	linesByHold := make(map[uuid.UUID][]sqlc.HoldLines, len(rows))
	for _, l := range lineRows {
		linesByHold[l.HoldID] = append(linesByHold[l.HoldID], l)
	}

	result := make([]*queries.HoldView, len(rows))
	for i, row := range rows {
		view, err := mapHoldRow(row)
		if err != nil {
			return nil, err
		}
		view.Lines = mapHoldLines(linesByHold[row.ID])
		result[i] = view
	}
	return result, nil
}

func (r *HoldReadStore) FindExpired(ctx context.Context, now time.Time, limit int) ([]queries.ExpiredHold, error) {
	rows, err := r.queries.ListExpiredHolds(ctx, r.db, sqlc.ListExpiredHoldsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired holds", err)
	}

	result := make([]queries.ExpiredHold, len(rows))
	for i, row := range rows {
		result[i] = queries.ExpiredHold{
			ID:        row.ID,
			UserID:    row.UserID,
			ExpiresAt: pgconv.TimeFromPgtype(row.ExpiresAt),
		}
	}
	return result, nil
}

// holdRowConverters teach copier the pgtype columns of sqlc.Holds.
var holdRowConverters = []copier.TypeConverter{
	{
		SrcType: pgtype.Timestamptz{},
		DstType: time.Time{},
		Fn: func(src any) (any, error) {
			return pgconv.TimeFromPgtype(src.(pgtype.Timestamptz)), nil
		},
	},
	{
		SrcType: pgtype.Timestamptz{},
		DstType: (*time.Time)(nil),
		Fn: func(src any) (any, error) {
			return pgconv.TimePtrFromPgtype(src.(pgtype.Timestamptz)), nil
		},
	},
	{
		SrcType: pgtype.Date{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return pgconv.DateFromPgtype(src.(pgtype.Date)).Format(time.DateOnly), nil
		},
	},
	{
		SrcType: pgtype.Numeric{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			d, err := pgconv.DecimalFromNumeric(src.(pgtype.Numeric))
			if err != nil {
				return nil, err
			}
			return d.StringFixed(2), nil
		},
	},
}

func mapHoldRow(row sqlc.Holds) (*queries.HoldView, error) {
	view := &queries.HoldView{}
	if err := copier.CopyWithOption(view, &row, copier.Option{Converters: holdRowConverters}); err != nil {
		return nil, infra.WrapRepoErr("failed to map hold row", err, infra.KindDBFailure)
	}
	return view, nil
}

func mapHoldLines(rows []sqlc.HoldLines) []queries.HoldLineView {
	result := make([]queries.HoldLineView, len(rows))
	for i, row := range rows {
		result[i] = queries.HoldLineView{
			RoomTypeID: row.RoomTypeID,
			Quantity:   int(row.Quantity),
		}
	}
	return result
}
