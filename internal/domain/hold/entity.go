package hold

import (
	"regexp"
	"slices"
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

type Hold struct {
	id             uuid.UUID
	userID         uuid.UUID
	hotelID        uuid.UUID
	stay           inventory.DateRange
	lines          []inventory.RoomLine
	numberOfGuests int
	totalPrice     decimal.Decimal
	currency       string
	status         Status
	expiresAt      time.Time
	createdAt      time.Time
	releasedAt     *time.Time
}

type NewParams struct {
	UserID         uuid.UUID
	HotelID        uuid.UUID
	Stay           inventory.DateRange
	Lines          []inventory.RoomLine
	NumberOfGuests int
	TotalPrice     decimal.Decimal
	Currency       string
}

// New creates an active hold expiring ttl after now. Lines must already be
// normalized.
func New(p NewParams, now time.Time, ttl time.Duration) (*Hold, error) {
	if p.UserID == uuid.Nil || p.HotelID == uuid.Nil {
		return nil, errs.Wrap(errs.ErrValidationFailed, "user id and hotel id are required")
	}
	if p.Stay.NightCount() < 1 {
		return nil, errs.Wrap(errs.ErrInvalidDateRange, "stay must cover at least one night")
	}
	if len(p.Lines) == 0 {
		return nil, errs.Wrap(errs.ErrInvalidRoomLines, "at least one room line is required")
	}
	if err := ValidateGuests(p.NumberOfGuests); err != nil {
		return nil, err
	}
	if err := ValidateCurrency(p.Currency); err != nil {
		return nil, err
	}
	if p.TotalPrice.IsNegative() {
		return nil, errs.Wrap(errs.ErrValidationFailed, "total price cannot be negative")
	}
	if ttl <= 0 {
		return nil, errs.Wrap(errs.ErrValidationFailed, "hold ttl must be positive")
	}

	return &Hold{
		id:             uuid.New(),
		userID:         p.UserID,
		hotelID:        p.HotelID,
		stay:           p.Stay,
		lines:          slices.Clone(p.Lines),
		numberOfGuests: p.NumberOfGuests,
		totalPrice:     p.TotalPrice,
		currency:       p.Currency,
		status:         StatusActive,
		expiresAt:      now.Add(ttl),
		createdAt:      now,
	}, nil
}

func ValidateGuests(n int) error {
	if n < 1 {
		return errs.Wrapf(errs.ErrValidationFailed, "number of guests must be at least 1, got %d", n)
	}
	return nil
}

func ValidateCurrency(c string) error {
	if !currencyPattern.MatchString(c) {
		return errs.Wrapf(errs.ErrValidationFailed, "currency %q is not an ISO-4217 code", c)
	}
	return nil
}

type ReconstructParams struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	HotelID        uuid.UUID
	Stay           inventory.DateRange
	Lines          []inventory.RoomLine
	NumberOfGuests int
	TotalPrice     decimal.Decimal
	Currency       string
	Status         Status
	ExpiresAt      time.Time
	CreatedAt      time.Time
	ReleasedAt     *time.Time
}

func Reconstruct(p ReconstructParams) *Hold {
	return &Hold{
		id:             p.ID,
		userID:         p.UserID,
		hotelID:        p.HotelID,
		stay:           p.Stay,
		lines:          slices.Clone(p.Lines),
		numberOfGuests: p.NumberOfGuests,
		totalPrice:     p.TotalPrice,
		currency:       p.Currency,
		status:         p.Status,
		expiresAt:      p.ExpiresAt,
		createdAt:      p.CreatedAt,
		releasedAt:     p.ReleasedAt,
	}
}

func (h *Hold) OwnedBy(userID uuid.UUID) bool {
	return h.userID == userID
}

func (h *Hold) IsActive() bool {
	return h.status == StatusActive
}

// IsExpiredAt is true once the hold no longer represents a live claim,
// either because its deadline passed or because it left the active state.
func (h *Hold) IsExpiredAt(now time.Time) bool {
	return !now.Before(h.expiresAt) || h.status != StatusActive
}

// Release moves an active hold to the terminal state implied by reason.
// An expiry release requires the deadline to have passed.
func (h *Hold) Release(reason ReleaseReason, now time.Time) error {
	target, err := reason.TargetStatus()
	if err != nil {
		return err
	}
	if !h.IsActive() {
		return errs.Wrapf(errs.ErrHoldNotActive, "hold %s is %s", h.id, h.status)
	}
	if reason == ReasonExpired && now.Before(h.expiresAt) {
		return errs.Wrapf(errs.ErrValidationFailed, "hold %s does not expire until %s", h.id, h.expiresAt.Format(time.RFC3339))
	}
	h.status = target
	h.releasedAt = &now
	return nil
}

// Complete requires the hold to be active and not past its deadline, even
// when the reaper has not swept it yet.
func (h *Hold) Complete(now time.Time) error {
	if !h.IsActive() {
		return errs.Wrapf(errs.ErrHoldNotActive, "hold %s is %s", h.id, h.status)
	}
	if !now.Before(h.expiresAt) {
		return errs.Wrapf(errs.ErrHoldNotActive, "hold %s expired at %s", h.id, h.expiresAt.Format(time.RFC3339))
	}
	h.status = StatusCompleted
	h.releasedAt = &now
	return nil
}

func (h *Hold) EnsureCompleted() error {
	if h.status != StatusCompleted {
		return errs.Wrapf(errs.ErrHoldNotCompleted, "hold %s is %s", h.id, h.status)
	}
	return nil
}

func (h *Hold) ID() uuid.UUID               { return h.id }
func (h *Hold) UserID() uuid.UUID           { return h.userID }
func (h *Hold) HotelID() uuid.UUID          { return h.hotelID }
func (h *Hold) Stay() inventory.DateRange   { return h.stay }
func (h *Hold) Lines() []inventory.RoomLine { return slices.Clone(h.lines) }
func (h *Hold) NumberOfGuests() int         { return h.numberOfGuests }
func (h *Hold) TotalPrice() decimal.Decimal { return h.totalPrice }
func (h *Hold) Currency() string            { return h.currency }
func (h *Hold) Status() Status              { return h.status }
func (h *Hold) ExpiresAt() time.Time        { return h.expiresAt }
func (h *Hold) CreatedAt() time.Time        { return h.createdAt }
func (h *Hold) ReleasedAt() *time.Time      { return h.releasedAt }
