package store

import (
	"context"
	"sync"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// MemoryStore keeps the booking collection in process memory. The mutex makes
// the conflict check and insert in Create a single atomic step, which is what
// the conflict invariant relies on under concurrent requests.
type MemoryStore struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(ctx context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ex := range s.bookings {
		if ex.BarberID == b.BarberID && ex.DateTime.Equal(b.DateTime) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
	}

	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID == id {
			out := b
			return &out, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
}

func (s *MemoryStore) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.CustomerEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListByBarber(ctx context.Context, barberID string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.BarberID == barberID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemoryStore) SetStatus(ctx context.Context, id string, status domain.Status) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = string(status)
			out := s.bookings[i]
			return &out, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeBookingNotFound)
}

// Compile-time check
var _ domain.Store = (*MemoryStore)(nil)
