package inventory

import (
	"time"

	"hotel-booking/internal/pkg/errs"
)

const stayDateLayout = "2006-01-02"

// StayDate is a calendar night, independent of time zone.
type StayDate struct {
	t time.Time
}

func NewStayDate(year int, month time.Month, day int) StayDate {
	return StayDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// StayDateOf takes the calendar day of t in t's own location.
func StayDateOf(t time.Time) StayDate {
	y, m, d := t.Date()
	return NewStayDate(y, m, d)
}

func ParseStayDate(s string) (StayDate, error) {
	t, err := time.Parse(stayDateLayout, s)
	if err != nil {
		return StayDate{}, errs.Mark(errs.Wrapf(err, "parse stay date %q", s), errs.ErrInvalidDateRange)
	}
	return StayDate{t: t}, nil
}

func (d StayDate) Time() time.Time              { return d.t }
func (d StayDate) IsZero() bool                 { return d.t.IsZero() }
func (d StayDate) AddDays(n int) StayDate       { return StayDate{t: d.t.AddDate(0, 0, n)} }
func (d StayDate) Before(other StayDate) bool   { return d.t.Before(other.t) }
func (d StayDate) After(other StayDate) bool    { return d.t.After(other.t) }
func (d StayDate) Equal(other StayDate) bool    { return d.t.Equal(other.t) }
func (d StayDate) String() string               { return d.t.Format(stayDateLayout) }
func (d StayDate) DaysUntil(other StayDate) int { return int(other.t.Sub(d.t).Hours() / 24) }

// DateRange is the half-open interval [checkIn, checkOut) of occupied nights.
type DateRange struct {
	checkIn  StayDate
	checkOut StayDate
}

func NewDateRange(checkIn, checkOut StayDate) (DateRange, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return DateRange{}, errs.Wrap(errs.ErrInvalidDateRange, "check-in and check-out are required")
	}
	if !checkOut.After(checkIn) {
		return DateRange{}, errs.Wrapf(errs.ErrInvalidDateRange, "check-out %s must be after check-in %s", checkOut, checkIn)
	}
	return DateRange{checkIn: checkIn, checkOut: checkOut}, nil
}

func (r DateRange) CheckIn() StayDate  { return r.checkIn }
func (r DateRange) CheckOut() StayDate { return r.checkOut }

// LastNight is the final occupied night, one day before check-out.
func (r DateRange) LastNight() StayDate { return r.checkOut.AddDays(-1) }

func (r DateRange) NightCount() int {
	return r.checkIn.DaysUntil(r.checkOut)
}

// Nights lists every occupied night in ascending order.
func (r DateRange) Nights() []StayDate {
	n := r.NightCount()
	if n <= 0 {
		return nil
	}
	nights := make([]StayDate, 0, n)
	for d := r.checkIn; d.Before(r.checkOut); d = d.AddDays(1) {
		nights = append(nights, d)
	}
	return nights
}

func (r DateRange) Contains(d StayDate) bool {
	return !d.Before(r.checkIn) && d.Before(r.checkOut)
}

func (r DateRange) String() string {
	return "[" + r.checkIn.String() + "," + r.checkOut.String() + ")"
}
