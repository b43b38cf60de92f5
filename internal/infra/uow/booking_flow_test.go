//go:build e2e

package uow_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel-booking/internal/domain/hold"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/infra/readstore"
	"hotel-booking/internal/infra/repository"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/logger"
	"hotel-booking/internal/testutil/pgtest"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/outbox"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/reaper"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

var (
	startTime = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	checkIn   = inventory.NewStayDate(2026, time.March, 15)
	checkOut  = checkIn.AddDays(3)
	holdTTL   = 15 * time.Minute
)

type BookingFlowSuite struct {
	suite.Suite

	DB    *pgxpool.Pool
	Clock *clock.MockClock

	Holds        commands.HoldCommands
	Bookings     commands.BookingCommands
	HoldQueries  queries.HoldQueries
	Availability queries.AvailabilityQueries
	Reaper       *reaper.ExpiryReaper
	UoW          shared.UnitOfWork

	HotelID uuid.UUID
	RoomA   uuid.UUID
	RoomB   uuid.UUID
	UserID  uuid.UUID
}

func TestBookingFlowSuite(t *testing.T) {
	suite.Run(t, new(BookingFlowSuite))
}

// SetupTest gives each test its own database so sweeps never see another
// test's holds.
func (s *BookingFlowSuite) SetupTest() {
	pool, _ := pgtest.NewDatabase(s.T())
	log := logger.Discard()
	q := sqlc.New()

	s.DB = pool
	s.Clock = clock.NewMockClock(startTime)
	s.UoW = uow.NewPostgresUoW(pool, q, log)
	store := readstore.NewHoldReadStore(q, pool)

	s.Holds = commands.NewHoldCommands(s.UoW, s.Clock, config.HoldConfig{TTL: holdTTL}, log)
	s.Bookings = commands.NewBookingCommands(s.UoW, s.Clock, log)
	s.HoldQueries = queries.NewHoldQueries(store, s.Clock)
	s.Availability = queries.NewAvailabilityQueries(s.UoW, repository.NewInventoryLedger(q, log), nil, log)
	s.Reaper = reaper.NewExpiryReaper(store, s.Holds, s.UoW, s.Clock,
		config.ReaperConfig{Interval: time.Second, BatchSize: 100, RetentionDays: 30}, log)

	s.HotelID = uuid.New()
	s.RoomA = uuid.MustParse("00000000-0000-4000-8000-00000000000a")
	s.RoomB = uuid.MustParse("00000000-0000-4000-8000-00000000000b")
	s.UserID = uuid.New()
}

func (s *BookingFlowSuite) input(lines ...inventory.RoomLine) commands.CreateHoldInput {
	return commands.CreateHoldInput{
		UserID:         s.UserID,
		HotelID:        s.HotelID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Lines:          lines,
		NumberOfGuests: 2,
		Currency:       "USD",
	}
}

func (s *BookingFlowSuite) requireHeld(roomTypeID uuid.UUID, held, booked int) {
	s.T().Helper()
	for d := checkIn; d.Before(checkOut); d = d.AddDays(1) {
		c := pgtest.ReadCounters(s.T(), s.DB, roomTypeID, d)
		s.Equal(held, c.Held, "held units on %s", d)
		s.Equal(booked, c.Booked, "booked units on %s", d)
	}
}

// =============================================================================
// Reservation
// =============================================================================

func (s *BookingFlowSuite) TestCreate_PricesEveryNight() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 5, "100.00")

	view, err := s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 2}))

	s.Require().NoError(err)
	s.Equal("600.00", view.TotalPrice)
	s.Equal("active", view.Status)
	s.True(view.ExpiresAt.Equal(startTime.Add(holdTTL)))
	s.requireHeld(s.RoomA, 2, 0)
}

func (s *BookingFlowSuite) TestCreate_MixedRates() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 5, "120.50")
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomB, checkIn, 3, 5, "99.99")

	view, err := s.Holds.Create(ctx, s.input(
		inventory.RoomLine{RoomTypeID: s.RoomB, Quantity: 1},
		inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 1},
	))

	s.Require().NoError(err)
	// 3 x 120.50 + 3 x 99.99
	s.Equal("661.47", view.TotalPrice)
}

func (s *BookingFlowSuite) TestCreate_ConcurrentRequestsForLastUnit() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 1, "100.00")

	const attempts = 10
	var (
		wg          sync.WaitGroup
		succeeded   atomic.Int32
		unavailable atomic.Int32
		start       = make(chan struct{})
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			in := s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 1})
			in.UserID = uuid.New()
			_, err := s.Holds.Create(ctx, in)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errs.Is(err, errs.ErrRoomsNotAvailable):
				unavailable.Add(1)
			default:
				s.T().Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	s.Equal(int32(1), succeeded.Load())
	s.Equal(int32(attempts-1), unavailable.Load())
	s.requireHeld(s.RoomA, 1, 0)
}

func (s *BookingFlowSuite) TestCreate_AllOrNothing() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 5, "100.00")
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomB, checkIn, 3, 1, "100.00")
	pgtest.SetCounters(s.T(), s.DB, s.RoomB, checkIn.AddDays(2), 1, 0)

	_, err := s.Holds.Create(ctx, s.input(
		inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 2},
		inventory.RoomLine{RoomTypeID: s.RoomB, Quantity: 1},
	))

	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrRoomsNotAvailable))
	s.requireHeld(s.RoomA, 0, 0)
	s.Equal(0, pgtest.ReadCounters(s.T(), s.DB, s.RoomB, checkIn).Held)
}

func (s *BookingFlowSuite) TestCreate_MissingNightIsUnavailable() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 2, 5, "100.00")

	_, err := s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 1}))

	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrRoomsNotAvailable))
	s.Equal(0, pgtest.ReadCounters(s.T(), s.DB, s.RoomA, checkIn).Held)
}

func (s *BookingFlowSuite) TestCreate_OtherHotelInventoryIsNotUsed() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, uuid.New(), s.RoomA, checkIn, 3, 5, "100.00")

	_, err := s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 1}))

	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrRoomsNotAvailable))
}

// =============================================================================
// Release
// =============================================================================

func (s *BookingFlowSuite) TestRelease_FreesUnitsForTheNextGuest() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 2, "100.00")

	first, err := s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 2}))
	s.Require().NoError(err)

	_, err = s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 1}))
	s.True(errs.Is(err, errs.ErrRoomsNotAvailable))

	res, err := s.Holds.Release(ctx, first.ID, s.UserID, hold.ReasonUserCancelled)
	s.Require().NoError(err)
	s.Equal(hold.StatusReleased, res.Status)
	s.requireHeld(s.RoomA, 0, 0)

	_, err = s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 1}))
	s.Require().NoError(err)
	s.requireHeld(s.RoomA, 1, 0)
}

func (s *BookingFlowSuite) TestRelease_ThenGet() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 2, "100.00")

	created, err := s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 1}))
	s.Require().NoError(err)

	s.Clock.Add(time.Minute)
	_, err = s.Holds.Release(ctx, created.ID, s.UserID, hold.ReasonUserCancelled)
	s.Require().NoError(err)

	view, err := s.HoldQueries.Get(ctx, created.ID, s.UserID)
	s.Require().NoError(err)
	s.Equal("released", view.Status)
	s.True(view.IsExpired)
	s.Require().NotNil(view.ReleasedAt)
	s.True(view.ReleasedAt.Equal(startTime.Add(time.Minute)))

	_, err = s.Holds.Release(ctx, created.ID, s.UserID, hold.ReasonUserCancelled)
	s.True(errs.Is(err, errs.ErrHoldNotActive))
	s.requireHeld(s.RoomA, 0, 0)
}

func (s *BookingFlowSuite) TestRelease_OtherUserIsForbidden() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 2, "100.00")

	created, err := s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 1}))
	s.Require().NoError(err)

	_, err = s.Holds.Release(ctx, created.ID, uuid.New(), hold.ReasonUserCancelled)
	s.True(errs.Is(err, errs.ErrForbidden))
	s.Equal("active", pgtest.HoldStatus(s.T(), s.DB, created.ID))

	_, err = s.HoldQueries.Get(ctx, created.ID, uuid.New())
	s.True(errs.Is(err, errs.ErrForbidden))
}

// =============================================================================
// Expiry
// =============================================================================

func (s *BookingFlowSuite) TestReaper_ExpiresOnceAndEmitsEvent() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 2, "100.00")

	created, err := s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 2}))
	s.Require().NoError(err)

	res, err := s.Reaper.RunOnce(ctx)
	s.Require().NoError(err)
	s.Equal(reaper.SweepResult{}, res, "nothing is due before the deadline")

	s.Clock.Add(holdTTL)
	res, err = s.Reaper.RunOnce(ctx)
	s.Require().NoError(err)
	s.Equal(reaper.SweepResult{Found: 1, Expired: 1}, res)
	s.Equal("expired", pgtest.HoldStatus(s.T(), s.DB, created.ID))
	s.requireHeld(s.RoomA, 0, 0)
	s.Equal(1, pgtest.CountOutbox(s.T(), s.DB, shared.EventHoldExpired))

	res, err = s.Reaper.RunOnce(ctx)
	s.Require().NoError(err)
	s.Equal(reaper.SweepResult{}, res)
	s.requireHeld(s.RoomA, 0, 0)
	s.Equal(1, pgtest.CountOutbox(s.T(), s.DB, shared.EventHoldExpired))
}

func (s *BookingFlowSuite) TestListActive_HidesHoldsPastDeadline() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 5, "100.00")

	_, err := s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 1}))
	s.Require().NoError(err)
	s.Clock.Add(5 * time.Minute)
	second, err := s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 1}))
	s.Require().NoError(err)

	s.Clock.Add(11 * time.Minute)
	views, err := s.HoldQueries.ListActiveForUser(ctx, s.UserID)

	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Equal(second.ID, views[0].ID)
	s.Equal(1, len(views[0].Lines))
}

// =============================================================================
// Booking
// =============================================================================

func (s *BookingFlowSuite) TestCommit_ConvertsHeldToBooked() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 5, "100.00")

	created, err := s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 2}))
	s.Require().NoError(err)

	ready, err := s.Bookings.Commit(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("600.00", ready.TotalPrice)
	s.Equal("completed", pgtest.HoldStatus(s.T(), s.DB, created.ID))
	s.requireHeld(s.RoomA, 0, 2)
	s.Equal(1, pgtest.CountOutbox(s.T(), s.DB, shared.EventBookingReady))

	_, err = s.Bookings.Commit(ctx, created.ID)
	s.True(errs.Is(err, errs.ErrHoldNotActive))
	s.requireHeld(s.RoomA, 0, 2)
}

func (s *BookingFlowSuite) TestCommit_ExpiredHoldIsRefused() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 5, "100.00")

	created, err := s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 2}))
	s.Require().NoError(err)

	// the reaper has not run yet
	s.Clock.Add(holdTTL)
	_, err = s.Bookings.Commit(ctx, created.ID)

	s.True(errs.Is(err, errs.ErrHoldNotActive))
	s.Equal("active", pgtest.HoldStatus(s.T(), s.DB, created.ID))
	s.requireHeld(s.RoomA, 2, 0)
}

func (s *BookingFlowSuite) TestCommitAndRelease_ExactlyOneWins() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 5, "100.00")

	created, err := s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 1}))
	s.Require().NoError(err)

	var (
		wg                    sync.WaitGroup
		commitErr, releaseErr error
		start                 = make(chan struct{})
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		<-start
		_, commitErr = s.Bookings.Commit(ctx, created.ID)
	}()
	go func() {
		defer wg.Done()
		<-start
		_, releaseErr = s.Holds.Release(ctx, created.ID, s.UserID, hold.ReasonUserCancelled)
	}()
	close(start)
	wg.Wait()

	s.True((commitErr == nil) != (releaseErr == nil), "commit=%v release=%v", commitErr, releaseErr)
	c := pgtest.ReadCounters(s.T(), s.DB, s.RoomA, checkIn)
	s.Equal(0, c.Held)
	if commitErr == nil {
		s.Equal(1, c.Booked)
	} else {
		s.True(errs.Is(commitErr, errs.ErrHoldNotActive))
		s.Equal(0, c.Booked)
	}
}

func (s *BookingFlowSuite) TestCancelBooking_ReturnsUnitsOnce() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 5, "100.00")

	created, err := s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 2}))
	s.Require().NoError(err)
	_, err = s.Bookings.Commit(ctx, created.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.Bookings.CancelBooking(ctx, created.ID))
	s.requireHeld(s.RoomA, 0, 0)
	s.Equal(1, pgtest.CountOutbox(s.T(), s.DB, shared.EventBookingCancelled))

	err = s.Bookings.CancelBooking(ctx, created.ID)
	s.True(errs.Is(err, errs.ErrBookingAlreadyCancelled))
	s.requireHeld(s.RoomA, 0, 0)
}

// =============================================================================
// Availability
// =============================================================================

func (s *BookingFlowSuite) TestCheckAvailability() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 2, "100.00")
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomB, checkIn, 3, 2, "100.00")
	pgtest.SetCounters(s.T(), s.DB, s.RoomA, checkIn.AddDays(1), 1, 0)
	pgtest.CloseNight(s.T(), s.DB, s.RoomB, checkIn.AddDays(2))

	testCases := []struct {
		name       string
		ids        []uuid.UUID
		quantities []int
		checkOut   inventory.StayDate
		want       bool
	}{
		{name: "one unit left on the busiest night", ids: []uuid.UUID{s.RoomA}, quantities: []int{1}, checkOut: checkOut, want: true},
		{name: "busiest night cannot fit two", ids: []uuid.UUID{s.RoomA}, quantities: []int{2}, checkOut: checkOut, want: false},
		{name: "closed night", ids: []uuid.UUID{s.RoomB}, quantities: []int{1}, checkOut: checkOut, want: false},
		{name: "closed night outside the stay", ids: []uuid.UUID{s.RoomB}, quantities: []int{1}, checkOut: checkIn.AddDays(2), want: true},
		{name: "night past the seeded range", ids: []uuid.UUID{s.RoomA}, quantities: []int{1}, checkOut: checkOut.AddDays(1), want: false},
		{name: "empty range", ids: []uuid.UUID{s.RoomA}, quantities: []int{1}, checkOut: checkIn, want: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := s.Availability.CheckAvailability(ctx, tc.ids, checkIn, tc.checkOut, tc.quantities)
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}
}

// =============================================================================
// Retention
// =============================================================================

func (s *BookingFlowSuite) TestPruneElapsed_KeepsNightsInsideRetention() {
	ctx := context.Background()
	old := inventory.NewStayDate(2026, time.January, 10)
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, old, 5, 2, "100.00")
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 2, "100.00")

	n, err := s.Reaper.PruneElapsed(ctx)

	s.Require().NoError(err)
	s.Equal(int64(5), n)
	s.Equal(3, pgtest.CountInventory(s.T(), s.DB))
}

// =============================================================================
// Outbox
// =============================================================================

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []shared.OutboxMessage
}

func (p *recordingPublisher) Publish(_ context.Context, msg shared.OutboxMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return nil
}

func (s *BookingFlowSuite) TestOutboxRelay_PublishesCommittedEventsOnce() {
	ctx := context.Background()
	pgtest.SeedInventory(s.T(), s.DB, s.HotelID, s.RoomA, checkIn, 3, 5, "100.00")

	created, err := s.Holds.Create(ctx, s.input(inventory.RoomLine{RoomTypeID: s.RoomA, Quantity: 1}))
	s.Require().NoError(err)
	_, err = s.Bookings.Commit(ctx, created.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.Bookings.CancelBooking(ctx, created.ID))

	pub := &recordingPublisher{}
	relay := outbox.NewRelay(s.UoW, pub, s.Clock, config.OutboxConfig{BatchSize: 10, PollInterval: time.Second}, logger.Discard())

	n, err := relay.RunOnce(ctx)
	s.Require().NoError(err)
	s.Equal(2, n)
	s.Require().Len(pub.msgs, 2)
	s.Equal(shared.EventBookingReady, pub.msgs[0].EventType)
	s.Equal(shared.EventBookingCancelled, pub.msgs[1].EventType)
	s.Equal(created.ID, pub.msgs[0].AggregateID)

	n, err = relay.RunOnce(ctx)
	s.Require().NoError(err)
	s.Equal(0, n)
}
