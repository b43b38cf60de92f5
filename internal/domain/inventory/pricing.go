package inventory

import (
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const moneyScale = 2

var ErrRateMissing = errs.New("nightly rate missing")

type NightlyRate struct {
	RoomTypeID uuid.UUID
	Date       StayDate
	Rate       decimal.Decimal
}

// QuoteTotal sums rate x quantity over every night exactly and rounds to
// cents once, on the final total.
func QuoteTotal(lines []RoomLine, r DateRange, rates []NightlyRate) (decimal.Decimal, error) {
	byKey := make(map[recordKey]decimal.Decimal, len(rates))
	for _, nr := range rates {
		byKey[keyOf(nr.RoomTypeID, nr.Date)] = nr.Rate
	}

	total := decimal.Zero
	for _, c := range Cells(lines, r) {
		rate, ok := byKey[keyOf(c.RoomTypeID, c.Date)]
		if !ok {
			return decimal.Zero, errs.Wrapf(ErrRateMissing, "room type %s on %s", c.RoomTypeID, c.Date)
		}
		if rate.IsNegative() {
			return decimal.Zero, errs.Wrapf(errs.ErrValidationFailed, "negative rate %s for room type %s on %s", rate, c.RoomTypeID, c.Date)
		}
		total = total.Add(rate.Mul(decimal.NewFromInt(int64(c.Quantity))))
	}
	return total.Round(moneyScale), nil
}
