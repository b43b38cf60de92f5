package repository

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/shared"
)

type OutboxQueries interface {
	InsertOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOutboxEventParams) (int64, error)
	ClaimUnpublishedEvents(ctx context.Context, db sqlc.DBTX, batchSize int32) ([]sqlc.OutboxEvents, error)
	MarkEventsPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEventsPublishedParams) (int64, error)
}

type OutboxRepository struct {
	queries OutboxQueries
}

func NewOutboxRepository(queries OutboxQueries) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
	}
}

func (r *OutboxRepository) Append(ctx context.Context, tx sqlc.DBTX, msg shared.OutboxMessage) (int64, error) {
	id, err := r.queries.InsertOutboxEvent(ctx, tx, sqlc.InsertOutboxEventParams{
		AggregateID: msg.AggregateID,
		EventType:   msg.EventType,
		Payload:     msg.Payload,
		CreatedAt:   pgconv.TimeToPgtype(msg.CreatedAt),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to append outbox event", err)
	}
	return id, nil
}

// ClaimBatch locks unpublished rows, skipping rows another relay holds.
func (r *OutboxRepository) ClaimBatch(ctx context.Context, tx sqlc.DBTX, limit int) ([]shared.OutboxMessage, error) {
	rows, err := r.queries.ClaimUnpublishedEvents(ctx, tx, pgconv.IntToInt32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}

	msgs := make([]shared.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, shared.OutboxMessage{
			ID:          row.ID,
			AggregateID: row.AggregateID,
			EventType:   row.EventType,
			Payload:     row.Payload,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return msgs, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, tx sqlc.DBTX, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.queries.MarkEventsPublished(ctx, tx, sqlc.MarkEventsPublishedParams{
		PublishedAt: pgconv.TimeToPgtype(at),
		Ids:         ids,
	}); err != nil {
		return infra.WrapRepoErr("failed to mark outbox events published", err)
	}
	return nil
}
