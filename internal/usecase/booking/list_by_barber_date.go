package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ListBookingsByBarberAndDate struct {
	store domain.Store
}

func NewListBookingsByBarberAndDate(store domain.Store) *ListBookingsByBarberAndDate {
	return &ListBookingsByBarberAndDate{store: store}
}

// Execute filters the barber's bookings down to those whose instant falls on
// the given calendar date. The projection uses the date's own location, so
// callers control the timezone (the server's local zone by default).
func (uc *ListBookingsByBarberAndDate) Execute(
	ctx context.Context,
	barberID string,
	date time.Time,
) ([]models.Booking, error) {

	bookings, err := uc.store.ListByBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	loc := date.Location()
	y, m, d := date.Date()

	out := []models.Booking{}
	for _, b := range bookings {
		by, bm, bd := b.DateTime.In(loc).Date()
		if by == y && bm == m && bd == d {
			out = append(out, b)
		}
	}

	return out, nil
}
