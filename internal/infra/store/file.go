package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const bookingsFileName = "bookings.json"

// FileStore persists the booking collection as one JSON array and rewrites
// the file wholesale on every mutation. The whole collection is held in
// memory; the file is only read once at startup.
type FileStore struct {
	mu       sync.Mutex
	path     string
	bookings []models.Booking
	log      *zap.Logger
}

func NewFileStore(dataDir string, log *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &FileStore{
		path: filepath.Join(dataDir, bookingsFileName),
		log:  log,
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.bookings = []models.Booking{}
		return s.flush()
	}
	if err != nil {
		return fmt.Errorf("read bookings file: %w", err)
	}

	if err := json.Unmarshal(raw, &s.bookings); err != nil {
		return fmt.Errorf("parse bookings file: %w", err)
	}

	s.log.Info("bookings loaded",
		zap.String("path", s.path),
		zap.Int("count", len(s.bookings)),
	)
	return nil
}

// flush rewrites the whole file. Caller holds the lock.
func (s *FileStore) flush() error {
	raw, err := json.MarshalIndent(s.bookings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write bookings file: %w", err)
	}
	return nil
}

func (s *FileStore) Create(ctx context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ex := range s.bookings {
		if ex.BarberID == b.BarberID && ex.DateTime.Equal(b.DateTime) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
	}

	s.bookings = append(s.bookings, *b)
	if err := s.flush(); err != nil {
		s.bookings = s.bookings[:len(s.bookings)-1]
		return err
	}

	s.log.Info("booking created", zap.String("id", b.ID))
	return nil
}

func (s *FileStore) GetByID(ctx context.Context, id string) (*models.Booking, error) {
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

func (s *FileStore) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
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

func (s *FileStore) ListByBarber(ctx context.Context, barberID string) ([]models.Booking, error) {
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

func (s *FileStore) SetStatus(ctx context.Context, id string, status domain.Status) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}

		prev := s.bookings[i].Status
		s.bookings[i].Status = string(status)
		if err := s.flush(); err != nil {
			s.bookings[i].Status = prev
			return nil, err
		}

		out := s.bookings[i]
		s.log.Info("booking status updated",
			zap.String("id", id),
			zap.String("status", string(status)),
		)
		return &out, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}

		removed := s.bookings[i]
		s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
		if err := s.flush(); err != nil {
			s.bookings = append(s.bookings, removed)
			return err
		}

		s.log.Info("booking deleted", zap.String("id", id))
		return nil
	}
	return httperr.ErrBusiness(httperr.CodeBookingNotFound)
}

// Compile-time check
var _ domain.Store = (*FileStore)(nil)
