package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarberID      string
	CustomerEmail string
	DateTime      time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewCreateBooking(
	store domain.Store,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		store: store,
		audit: audit,
	}
}

// Execute validates and persists a booking. Checks run in order and stop at
// the first failure: email shape, then past instant, then slot conflict. The
// conflict check and the insert are one atomic store operation.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if !validators.IsValidEmail(in.CustomerEmail) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidEmail)
	}

	if !in.DateTime.After(time.Now()) {
		return nil, httperr.ErrBusiness(httperr.CodePastDateTime)
	}

	b := &models.Booking{
		ID:            uuid.NewString(),
		BarberID:      in.BarberID,
		CustomerEmail: strings.ToLower(in.CustomerEmail),
		DateTime:      in.DateTime,
		CreatedAt:     time.Now(),
		Status:        string(domain.InitialStatus()),
	}

	if err := uc.store.Create(ctx, b); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotConflict) {
			uc.audit.Dispatch(audit.Event{
				Action:   "booking_conflict",
				BarberID: in.BarberID,
				Email:    b.CustomerEmail,
				Metadata: map[string]any{"dateTime": in.DateTime},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    "booking_created",
		BookingID: b.ID,
		BarberID:  b.BarberID,
		Email:     b.CustomerEmail,
	})

	return b, nil
}
