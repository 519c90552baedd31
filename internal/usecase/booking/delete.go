package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type DeleteBooking struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	store domain.Store,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		store: store,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(ctx context.Context, id string) error {
	if err := uc.store.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    "booking_deleted",
		BookingID: id,
	})

	return nil
}
