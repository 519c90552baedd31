package booking

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type ListBookingsByEmail struct {
	store domain.Store
}

func NewListBookingsByEmail(store domain.Store) *ListBookingsByEmail {
	return &ListBookingsByEmail{store: store}
}

// Execute returns the bookings created with this customer email, exact match
// on the lowercased form.
func (uc *ListBookingsByEmail) Execute(
	ctx context.Context,
	email string,
) ([]models.Booking, error) {

	if !validators.IsValidEmail(email) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidEmail)
	}

	return uc.store.ListByEmail(ctx, strings.ToLower(email))
}
