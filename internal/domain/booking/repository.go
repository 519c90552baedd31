package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Store owns the booking collection. All mutation goes through it.
type Store interface {
	// Create persists a new booking. The conflict check against existing
	// bookings for the same barber and instant happens inside, under the
	// store's lock, so check-then-insert is atomic with respect to
	// concurrent creates. A taken slot returns the slot_conflict business
	// error. A booking of any status blocks its slot here; only the
	// availability display excludes cancelled ones.
	Create(ctx context.Context, b *models.Booking) error

	GetByID(ctx context.Context, id string) (*models.Booking, error)

	// ListByEmail matches the lowercased customer email exactly.
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)

	// ListByBarber returns every booking for the barber, any status,
	// ordered by creation.
	ListByBarber(ctx context.Context, barberID string) ([]models.Booking, error)

	// SetStatus updates the booking status and returns the updated record.
	SetStatus(ctx context.Context, id string, status Status) (*models.Booking, error)

	// Delete removes the record entirely.
	Delete(ctx context.Context, id string) error
}

// Directory is the external barber data provider. Read-only.
type Directory interface {
	ListBarbers(ctx context.Context) ([]models.Barber, error)
	GetBarber(ctx context.Context, id string) (*models.Barber, error)
}
