//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/hold"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	sharedmock "hotel-booking/internal/mock/shared"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/logger"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	now     = time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	userID  = uuid.MustParse("33333333-3333-4333-8333-333333333333")
	otherID = uuid.MustParse("44444444-4444-4444-8444-444444444444")
	hotelID = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	holdID  = uuid.MustParse("22222222-2222-4222-8222-222222222222")
	roomA   = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	roomB   = uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	checkIn  = inventory.NewStayDate(2026, time.March, 15)
	checkOut = inventory.NewStayDate(2026, time.March, 18)
)

// txMocks routes every Within call through one mocked transaction.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	ledger        *sharedmock.MockInventoryLedger
	holds         *sharedmock.MockHoldRepository
	outbox        *sharedmock.MockOutboxRepository
	cancellations *sharedmock.MockBookingCancellationRepository
}

func newTxMocks(t *testing.T) txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		ledger:        sharedmock.NewMockInventoryLedger(ctrl),
		holds:         sharedmock.NewMockHoldRepository(ctrl),
		outbox:        sharedmock.NewMockOutboxRepository(ctrl),
		cancellations: sharedmock.NewMockBookingCancellationRepository(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Ledger().Return(m.ledger).AnyTimes()
	m.tx.EXPECT().Holds().Return(m.holds).AnyTimes()
	m.tx.EXPECT().Outbox().Return(m.outbox).AnyTimes()
	m.tx.EXPECT().Cancellations().Return(m.cancellations).AnyTimes()
	m.tx.EXPECT().DB().Return(sqlc.DBTX(nil)).AnyTimes()
	return m
}

func stay(t *testing.T) inventory.DateRange {
	t.Helper()
	r, err := inventory.NewDateRange(checkIn, checkOut)
	require.NoError(t, err)
	return r
}

func flatRates(roomTypeID uuid.UUID, rate string) []inventory.NightlyRate {
	rates := make([]inventory.NightlyRate, 0, 3)
	for d := checkIn; d.Before(checkOut); d = d.AddDays(1) {
		rates = append(rates, inventory.NightlyRate{RoomTypeID: roomTypeID, Date: d, Rate: decimal.RequireFromString(rate)})
	}
	return rates
}

func storedHold(status hold.Status, expiresAt time.Time) *hold.Hold {
	r, _ := inventory.NewDateRange(checkIn, checkOut)
	return hold.Reconstruct(hold.ReconstructParams{
		ID:             holdID,
		UserID:         userID,
		HotelID:        hotelID,
		Stay:           r,
		Lines:          []inventory.RoomLine{{RoomTypeID: roomA, Quantity: 2}},
		NumberOfGuests: 2,
		TotalPrice:     decimal.RequireFromString("600.00"),
		Currency:       "USD",
		Status:         status,
		ExpiresAt:      expiresAt,
		CreatedAt:      now.Add(-5 * time.Minute),
	})
}

func createInput() commands.CreateHoldInput {
	return commands.CreateHoldInput{
		UserID:         userID,
		HotelID:        hotelID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Lines:          []inventory.RoomLine{{RoomTypeID: roomA, Quantity: 2}},
		NumberOfGuests: 2,
		Currency:       "USD",
	}
}

// =============================================================================
// Create Tests
// =============================================================================

func TestHoldCommands_Create(t *testing.T) {
	ctx := context.Background()
	lines := []inventory.RoomLine{{RoomTypeID: roomA, Quantity: 2}}

	testCases := []struct {
		name      string
		input     func() commands.CreateHoldInput
		setupMock func(*testing.T, txMocks)
		wantErr   error
		wantTotal string
	}{
		{
			name:  "success: 2 rooms x 3 nights at 100.00",
			input: createInput,
			setupMock: func(t *testing.T, m txMocks) {
				gomock.InOrder(
					m.ledger.EXPECT().TryReserve(gomock.Any(), gomock.Any(), hotelID, lines, stay(t)).Return(true, nil),
					m.ledger.EXPECT().NightlyRates(gomock.Any(), gomock.Any(), hotelID, []uuid.UUID{roomA}, stay(t)).Return(flatRates(roomA, "100.00"), nil),
					m.holds.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, _ sqlc.DBTX, h *hold.Hold) error {
							assert.Equal(t, hold.StatusActive, h.Status())
							assert.True(t, h.ExpiresAt().Equal(now.Add(15*time.Minute)))
							return nil
						}),
				)
			},
			wantTotal: "600.00",
		},
		{
			name: "success: repeated room types are merged before reserving",
			input: func() commands.CreateHoldInput {
				in := createInput()
				in.Lines = []inventory.RoomLine{{RoomTypeID: roomA, Quantity: 1}, {RoomTypeID: roomA, Quantity: 1}}
				return in
			},
			setupMock: func(t *testing.T, m txMocks) {
				m.ledger.EXPECT().TryReserve(gomock.Any(), gomock.Any(), hotelID, lines, stay(t)).Return(true, nil)
				m.ledger.EXPECT().NightlyRates(gomock.Any(), gomock.Any(), hotelID, []uuid.UUID{roomA}, stay(t)).Return(flatRates(roomA, "100.00"), nil)
				m.holds.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTotal: "600.00",
		},
		{
			name:  "refused: not enough units",
			input: createInput,
			setupMock: func(t *testing.T, m txMocks) {
				m.ledger.EXPECT().TryReserve(gomock.Any(), gomock.Any(), hotelID, lines, stay(t)).Return(false, nil)
			},
			wantErr: errs.ErrRoomsNotAvailable,
		},
		{
			name: "invalid: check-out not after check-in",
			input: func() commands.CreateHoldInput {
				in := createInput()
				in.CheckOut = in.CheckIn
				return in
			},
			setupMock: func(*testing.T, txMocks) {},
			wantErr:   errs.ErrInvalidDateRange,
		},
		{
			name: "invalid: zero quantity",
			input: func() commands.CreateHoldInput {
				in := createInput()
				in.Lines = []inventory.RoomLine{{RoomTypeID: roomA, Quantity: 0}}
				return in
			},
			setupMock: func(*testing.T, txMocks) {},
			wantErr:   errs.ErrInvalidRoomLines,
		},
		{
			name: "invalid: no guests",
			input: func() commands.CreateHoldInput {
				in := createInput()
				in.NumberOfGuests = 0
				return in
			},
			setupMock: func(*testing.T, txMocks) {},
			wantErr:   errs.ErrValidationFailed,
		},
		{
			name: "invalid: currency not ISO-4217",
			input: func() commands.CreateHoldInput {
				in := createInput()
				in.Currency = "usd"
				return in
			},
			setupMock: func(*testing.T, txMocks) {},
			wantErr:   errs.ErrValidationFailed,
		},
		{
			name:  "error: rate missing for a night",
			input: createInput,
			setupMock: func(t *testing.T, m txMocks) {
				m.ledger.EXPECT().TryReserve(gomock.Any(), gomock.Any(), hotelID, lines, stay(t)).Return(true, nil)
				m.ledger.EXPECT().NightlyRates(gomock.Any(), gomock.Any(), hotelID, []uuid.UUID{roomA}, stay(t)).Return(flatRates(roomA, "100.00")[:2], nil)
			},
			wantErr: errs.ErrDatabaseOperationFailed,
		},
		{
			name:  "error: ledger failure",
			input: createInput,
			setupMock: func(t *testing.T, m txMocks) {
				m.ledger.EXPECT().TryReserve(gomock.Any(), gomock.Any(), hotelID, lines, stay(t)).
					Return(false, infra.WrapRepoErr("failed to reserve held units", errors.New("connection reset")))
			},
			wantErr: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			tc.setupMock(t, m)
			uc := commands.NewHoldCommands(m.uow, clock.NewMockClock(now), config.HoldConfig{TTL: 15 * time.Minute}, logger.Discard())

			view, err := uc.Create(ctx, tc.input())

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected %v but got (%v)", tc.wantErr, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, view.TotalPrice)
			assert.Equal(t, "active", view.Status)
			assert.Equal(t, "2026-03-15", view.CheckIn)
			assert.Equal(t, "2026-03-18", view.CheckOut)
			assert.False(t, view.IsExpired)
			assert.NotEqual(t, uuid.Nil, view.ID)
		})
	}
}

// =============================================================================
// Release Tests
// =============================================================================

func TestHoldCommands_Release(t *testing.T) {
	ctx := context.Background()
	lines := []inventory.RoomLine{{RoomTypeID: roomA, Quantity: 2}}

	testCases := []struct {
		name       string
		requester  uuid.UUID
		reason     hold.ReleaseReason
		setupMock  func(*testing.T, txMocks)
		wantErr    error
		wantStatus hold.Status
	}{
		{
			name:      "success: user cancels an active hold",
			requester: userID,
			reason:    hold.ReasonUserCancelled,
			setupMock: func(t *testing.T, m txMocks) {
				gomock.InOrder(
					m.holds.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), holdID).Return(storedHold(hold.StatusActive, now.Add(10*time.Minute)), nil),
					m.ledger.EXPECT().Release(gomock.Any(), gomock.Any(), lines, stay(t)).Return(inventory.Adjustment{Rows: 3}, nil),
					m.holds.EXPECT().SaveTransition(gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, _ sqlc.DBTX, h *hold.Hold) error {
							assert.Equal(t, hold.StatusReleased, h.Status())
							require.NotNil(t, h.ReleasedAt())
							assert.True(t, h.ReleasedAt().Equal(now))
							return nil
						}),
				)
			},
			wantStatus: hold.StatusReleased,
		},
		{
			name:      "success: expiry appends a hold.expired event",
			requester: userID,
			reason:    hold.ReasonExpired,
			setupMock: func(t *testing.T, m txMocks) {
				m.holds.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), holdID).Return(storedHold(hold.StatusActive, now.Add(-time.Minute)), nil)
				m.ledger.EXPECT().Release(gomock.Any(), gomock.Any(), lines, stay(t)).Return(inventory.Adjustment{Rows: 2, Missing: 1}, nil)
				m.holds.EXPECT().SaveTransition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, msg shared.OutboxMessage) (int64, error) {
						assert.Equal(t, shared.EventHoldExpired, msg.EventType)
						assert.Equal(t, holdID, msg.AggregateID)
						var payload shared.HoldExpired
						require.NoError(t, json.Unmarshal(msg.Payload, &payload))
						assert.Equal(t, userID, payload.UserID)
						assert.True(t, payload.ExpiredAt.Equal(now))
						return 1, nil
					})
			},
			wantStatus: hold.StatusExpired,
		},
		{
			name:      "forbidden: another user",
			requester: otherID,
			reason:    hold.ReasonUserCancelled,
			setupMock: func(t *testing.T, m txMocks) {
				m.holds.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), holdID).Return(storedHold(hold.StatusActive, now.Add(10*time.Minute)), nil)
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name:      "not active: already completed",
			requester: userID,
			reason:    hold.ReasonUserCancelled,
			setupMock: func(t *testing.T, m txMocks) {
				m.holds.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), holdID).Return(storedHold(hold.StatusCompleted, now.Add(10*time.Minute)), nil)
			},
			wantErr: errs.ErrHoldNotActive,
		},
		{
			name:      "not found",
			requester: userID,
			reason:    hold.ReasonUserCancelled,
			setupMock: func(t *testing.T, m txMocks) {
				m.holds.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), holdID).Return(nil, infra.NewRepoErr(infra.KindNotFound, "hold not found"))
			},
			wantErr: errs.ErrHoldNotFound,
		},
		{
			name:      "conflict: transition lost the race",
			requester: userID,
			reason:    hold.ReasonExpired,
			setupMock: func(t *testing.T, m txMocks) {
				m.holds.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), holdID).Return(storedHold(hold.StatusActive, now), nil)
				m.ledger.EXPECT().Release(gomock.Any(), gomock.Any(), lines, stay(t)).Return(inventory.Adjustment{Rows: 3}, nil)
				m.holds.EXPECT().SaveTransition(gomock.Any(), gomock.Any(), gomock.Any()).Return(infra.NewRepoErr(infra.KindConflict, "hold is no longer active"))
			},
			wantErr: errs.ErrHoldNotActive,
		},
		{
			name:      "invalid: expiry before the deadline",
			requester: userID,
			reason:    hold.ReasonExpired,
			setupMock: func(t *testing.T, m txMocks) {
				m.holds.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), holdID).Return(storedHold(hold.StatusActive, now.Add(time.Minute)), nil)
			},
			wantErr: errs.ErrValidationFailed,
		},
		{
			name:      "invalid: unknown reason",
			requester: userID,
			reason:    hold.ReleaseReason("bored"),
			setupMock: func(*testing.T, txMocks) {},
			wantErr:   errs.ErrValidationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			tc.setupMock(t, m)
			uc := commands.NewHoldCommands(m.uow, clock.NewMockClock(now), config.HoldConfig{TTL: 15 * time.Minute}, logger.Discard())

			res, err := uc.Release(ctx, holdID, tc.requester, tc.reason)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected %v but got (%v)", tc.wantErr, err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, holdID, res.HoldID)
			assert.Equal(t, tc.wantStatus, res.Status)
		})
	}
}
