package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CancelBooking struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewCancelBooking(
	store domain.Store,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		store: store,
		audit: audit,
	}
}

// Execute marks the booking cancelled. The record stays in the collection.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	b, err := uc.store.SetStatus(ctx, id, domain.StatusCancelled)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    "booking_cancelled",
		BookingID: b.ID,
		BarberID:  b.BarberID,
	})

	return b, nil
}
