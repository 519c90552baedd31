package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type GetBooking struct {
	store domain.Store
}

func NewGetBooking(store domain.Store) *GetBooking {
	return &GetBooking{store: store}
}

func (uc *GetBooking) Execute(ctx context.Context, id string) (*models.Booking, error) {
	return uc.store.GetByID(ctx, id)
}
