//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	repositorymock "hotel-booking/internal/mock/repository"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository_Append(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries)

	msg, err := shared.NewOutboxMessage(holdID, shared.EventHoldExpired, shared.HoldExpired{HoldID: holdID}, now)
	require.NoError(t, err)

	mockQueries.EXPECT().InsertOutboxEvent(ctx, mockDB, sqlc.InsertOutboxEventParams{
		AggregateID: holdID,
		EventType:   "hold.expired",
		Payload:     msg.Payload,
		CreatedAt:   pgconv.TimeToPgtype(now),
	}).Return(int64(42), nil)

	id, err := repo.Append(ctx, mockDB, msg)

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestOutboxRepository_ClaimBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows mapped in claim order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOutboxRepository(mockQueries)

		mockQueries.EXPECT().ClaimUnpublishedEvents(ctx, mockDB, int32(50)).Return([]sqlc.OutboxEvents{
			{ID: 7, AggregateID: holdID, EventType: "booking.ready", Payload: []byte(`{"a":1}`), CreatedAt: pgconv.TimeToPgtype(now)},
			{ID: 9, AggregateID: holdID, EventType: "booking.cancelled", Payload: []byte(`{"b":2}`), CreatedAt: pgconv.TimeToPgtype(now)},
		}, nil)

		got, err := repo.ClaimBatch(ctx, mockDB, 50)

		require.NoError(t, err)
		want := []shared.OutboxMessage{
			{ID: 7, AggregateID: holdID, EventType: "booking.ready", Payload: []byte(`{"a":1}`), CreatedAt: now},
			{ID: 9, AggregateID: holdID, EventType: "booking.cancelled", Payload: []byte(`{"b":2}`), CreatedAt: now},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ClaimBatch() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOutboxRepository(mockQueries)

		mockQueries.EXPECT().ClaimUnpublishedEvents(ctx, mockDB, int32(10)).Return(nil, errors.New("connection reset"))

		got, err := repo.ClaimBatch(ctx, mockDB, 10)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, got)
	})
}

func TestOutboxRepository_MarkPublished(t *testing.T) {
	ctx := context.Background()

	t.Run("no ids is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
		repo := repository.NewOutboxRepository(mockQueries)

		require.NoError(t, repo.MarkPublished(ctx, &mockDBTX{}, nil, now))
	})

	t.Run("marks every id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOutboxRepository(mockQueries)

		mockQueries.EXPECT().MarkEventsPublished(ctx, mockDB, sqlc.MarkEventsPublishedParams{
			PublishedAt: pgconv.TimeToPgtype(now),
			Ids:         []int64{7, 9},
		}).Return(int64(2), nil)

		require.NoError(t, repo.MarkPublished(ctx, mockDB, []int64{7, 9}, now))
	})
}

func TestBookingCancellationRepository_Record(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		insertErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: first cancellation"},
		{name: "error: already cancelled", insertErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "error: unknown hold", insertErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingCancellationQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingCancellationRepository(mockQueries)

			mockQueries.EXPECT().InsertBookingCancellation(ctx, mockDB, sqlc.InsertBookingCancellationParams{
				HoldID:      holdID,
				CancelledAt: pgconv.TimeToPgtype(now),
			}).Return(tc.insertErr)

			err := repo.Record(ctx, mockDB, holdID, now)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
