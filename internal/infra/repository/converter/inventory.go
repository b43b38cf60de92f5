package converter

import (
	"hotel-booking/internal/domain/inventory"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func RecordFromInfra(row sqlc.RoomInventory) (inventory.Record, error) {
	rate, err := pgconv.DecimalFromNumeric(row.RatePerNight)
	if err != nil {
		return inventory.Record{}, errs.Wrapf(err, "rate for room type %s", row.RoomTypeID)
	}
	return inventory.Record{
		RoomTypeID:   row.RoomTypeID,
		HotelID:      row.HotelID,
		Date:         inventory.StayDateOf(pgconv.DateFromPgtype(row.StayDate)),
		TotalUnits:   int(row.TotalUnits),
		BookedUnits:  int(row.BookedUnits),
		HeldUnits:    int(row.HeldUnits),
		RatePerNight: rate,
		Status:       inventory.Status(row.Status),
	}, nil
}

func RecordsFromInfra(rows []sqlc.RoomInventory) ([]inventory.Record, error) {
	out := make([]inventory.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := RecordFromInfra(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func NightlyRatesFromInfra(rows []sqlc.ListNightlyRatesRow) ([]inventory.NightlyRate, error) {
	out := make([]inventory.NightlyRate, 0, len(rows))
	for _, row := range rows {
		rate, err := pgconv.DecimalFromNumeric(row.RatePerNight)
		if err != nil {
			return nil, errs.Wrapf(err, "rate for room type %s", row.RoomTypeID)
		}
		out = append(out, inventory.NightlyRate{
			RoomTypeID: row.RoomTypeID,
			Date:       inventory.StayDateOf(pgconv.DateFromPgtype(row.StayDate)),
			Rate:       rate,
		})
	}
	return out, nil
}

func DateToInfra(d inventory.StayDate) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}
