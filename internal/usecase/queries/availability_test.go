//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	queriesmock "hotel-booking/internal/mock/queries"
	sharedmock "hotel-booking/internal/mock/shared"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/logger"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	roomA = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	roomB = uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	checkIn  = inventory.NewStayDate(2026, time.March, 15)
	checkOut = inventory.NewStayDate(2026, time.March, 18)
)

type availabilityMocks struct {
	uow    *sharedmock.MockUnitOfWork
	ledger *sharedmock.MockInventoryLedger
	cache  *queriesmock.MockAvailabilityCache
}

func newAvailabilityMocks(t *testing.T) availabilityMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := availabilityMocks{
		uow:    sharedmock.NewMockUnitOfWork(ctrl),
		ledger: sharedmock.NewMockInventoryLedger(ctrl),
		cache:  queriesmock.NewMockAvailabilityCache(ctrl),
	}
	m.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
	return m
}

func TestAvailabilityQueries_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	sortedLines := []inventory.RoomLine{{RoomTypeID: roomA, Quantity: 1}, {RoomTypeID: roomB, Quantity: 2}}
	r, err := inventory.NewDateRange(checkIn, checkOut)
	require.NoError(t, err)

	testCases := []struct {
		name        string
		roomTypeIDs []uuid.UUID
		quantities  []int
		checkOut    inventory.StayDate
		setupMock   func(availabilityMocks)
		want        bool
		wantErr     error
	}{
		{
			name:        "cache miss reads the ledger and stores the answer",
			roomTypeIDs: []uuid.UUID{roomB, roomA},
			quantities:  []int{2, 1},
			checkOut:    checkOut,
			setupMock: func(m availabilityMocks) {
				gomock.InOrder(
					m.cache.EXPECT().Lookup(ctx, sortedLines, r).Return(false, false, nil),
					m.ledger.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), sortedLines, r).Return(true, nil),
					m.cache.EXPECT().Store(ctx, sortedLines, r, true).Return(nil),
				)
			},
			want: true,
		},
		{
			name:        "cache hit skips the ledger",
			roomTypeIDs: []uuid.UUID{roomA, roomB},
			quantities:  []int{1, 2},
			checkOut:    checkOut,
			setupMock: func(m availabilityMocks) {
				m.cache.EXPECT().Lookup(ctx, sortedLines, r).Return(false, true, nil)
			},
			want: false,
		},
		{
			name:        "cache errors fall through to the ledger",
			roomTypeIDs: []uuid.UUID{roomA, roomB},
			quantities:  []int{1, 2},
			checkOut:    checkOut,
			setupMock: func(m availabilityMocks) {
				m.cache.EXPECT().Lookup(ctx, sortedLines, r).Return(false, false, errors.New("redis: connection refused"))
				m.ledger.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), sortedLines, r).Return(false, nil)
				m.cache.EXPECT().Store(ctx, sortedLines, r, false).Return(errors.New("redis: connection refused"))
			},
			want: false,
		},
		{
			name:        "empty request is unavailable",
			roomTypeIDs: nil,
			quantities:  nil,
			checkOut:    checkOut,
			setupMock:   func(availabilityMocks) {},
			want:        false,
		},
		{
			name:        "inverted range is unavailable, not an error",
			roomTypeIDs: []uuid.UUID{roomA},
			quantities:  []int{1},
			checkOut:    checkIn,
			setupMock:   func(availabilityMocks) {},
			want:        false,
		},
		{
			name:        "mismatched lengths",
			roomTypeIDs: []uuid.UUID{roomA, roomB},
			quantities:  []int{1},
			checkOut:    checkOut,
			setupMock:   func(availabilityMocks) {},
			wantErr:     errs.ErrInvalidRoomLines,
		},
		{
			name:        "negative quantity",
			roomTypeIDs: []uuid.UUID{roomA},
			quantities:  []int{-1},
			checkOut:    checkOut,
			setupMock:   func(availabilityMocks) {},
			wantErr:     errs.ErrInvalidRoomLines,
		},
		{
			name:        "ledger failure",
			roomTypeIDs: []uuid.UUID{roomA, roomB},
			quantities:  []int{1, 2},
			checkOut:    checkOut,
			setupMock: func(m availabilityMocks) {
				m.cache.EXPECT().Lookup(ctx, sortedLines, r).Return(false, false, nil)
				m.ledger.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), sortedLines, r).
					Return(false, infra.WrapRepoErr("failed to list inventory range", errors.New("connection reset")))
			},
			wantErr: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newAvailabilityMocks(t)
			tc.setupMock(m)
			q := queries.NewAvailabilityQueries(m.uow, m.ledger, m.cache, logger.Discard())

			got, err := q.CheckAvailability(ctx, tc.roomTypeIDs, checkIn, tc.checkOut, tc.quantities)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected %v but got (%v)", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAvailabilityQueries_WithoutCache(t *testing.T) {
	ctx := context.Background()
	m := newAvailabilityMocks(t)
	m.ledger.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

	q := queries.NewAvailabilityQueries(m.uow, m.ledger, nil, logger.Discard())
	got, err := q.CheckAvailability(ctx, []uuid.UUID{roomA}, checkIn, checkOut, []int{1})

	require.NoError(t, err)
	assert.True(t, got)
}
