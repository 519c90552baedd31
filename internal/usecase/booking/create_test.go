package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/store"
)

func newCreateUC(t *testing.T) (*CreateBooking, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return NewCreateBooking(st, audit.NewDispatcher(zap.NewNop())), st
}

// nextMonday returns midnight of the next Monday in the local zone.
func nextMonday(t *testing.T) time.Time {
	t.Helper()
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
}

func TestCreateBooking_InvalidEmail(t *testing.T) {
	uc, _ := newCreateUC(t)

	for _, email := range []string{"bad-email", "a@b", "a b@c.com", "@c.com", "a@", ""} {
		_, err := uc.Execute(context.Background(), CreateBookingInput{
			BarberID:      "1",
			CustomerEmail: email,
			DateTime:      nextMonday(t).Add(9 * time.Hour),
		})
		if !httperr.IsBusiness(err, httperr.CodeInvalidEmail) {
			t.Fatalf("email %q: expected invalid_email, got %v", email, err)
		}
	}
}

func TestCreateBooking_PastDateTime(t *testing.T) {
	uc, _ := newCreateUC(t)

	for _, dt := range []time.Time{
		time.Now().Add(-time.Hour),
		time.Now().Add(-time.Second),
	} {
		_, err := uc.Execute(context.Background(), CreateBookingInput{
			BarberID:      "1",
			CustomerEmail: "a@b.com",
			DateTime:      dt,
		})
		if !httperr.IsBusiness(err, httperr.CodePastDateTime) {
			t.Fatalf("dateTime %s: expected past_date_time, got %v", dt, err)
		}
	}
}

func TestCreateBooking_EmailCheckedBeforeConflict(t *testing.T) {
	uc, _ := newCreateUC(t)
	slot := nextMonday(t).Add(9 * time.Hour)

	if _, err := uc.Execute(context.Background(), CreateBookingInput{
		BarberID: "1", CustomerEmail: "a@b.com", DateTime: slot,
	}); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	// Bad email on a taken slot still fails on the email, not the conflict.
	_, err := uc.Execute(context.Background(), CreateBookingInput{
		BarberID: "1", CustomerEmail: "bad-email", DateTime: slot,
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidEmail) {
		t.Fatalf("expected invalid_email before conflict check, got %v", err)
	}
}

func TestCreateBooking_SlotConflict(t *testing.T) {
	uc, _ := newCreateUC(t)
	slot := nextMonday(t).Add(9 * time.Hour)

	if _, err := uc.Execute(context.Background(), CreateBookingInput{
		BarberID: "1", CustomerEmail: "a@b.com", DateTime: slot,
	}); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		BarberID: "1", CustomerEmail: "c@d.com", DateTime: slot,
	})
	if !httperr.IsBusiness(err, httperr.CodeSlotConflict) {
		t.Fatalf("expected slot_conflict, got %v", err)
	}

	// A different barber at the same instant is fine.
	if _, err := uc.Execute(context.Background(), CreateBookingInput{
		BarberID: "2", CustomerEmail: "c@d.com", DateTime: slot,
	}); err != nil {
		t.Fatalf("different barber same slot should succeed: %v", err)
	}
}

func TestCreateBooking_ConcurrentConflict(t *testing.T) {
	uc, _ := newCreateUC(t)
	slot := nextMonday(t).Add(10 * time.Hour)

	const callers = 32
	var wg sync.WaitGroup
	results := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), CreateBookingInput{
				BarberID: "1", CustomerEmail: "a@b.com", DateTime: slot,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case httperr.IsBusiness(err, httperr.CodeSlotConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if successes != 1 {
		t.Fatalf("expected exactly 1 success, got %d", successes)
	}
	if conflicts != callers-1 {
		t.Fatalf("expected %d conflicts, got %d", callers-1, conflicts)
	}
}

func TestCreateBooking_RoundTrip(t *testing.T) {
	uc, st := newCreateUC(t)
	slot := nextMonday(t).Add(14 * time.Hour)

	created, err := uc.Execute(context.Background(), CreateBookingInput{
		BarberID:      "1",
		CustomerEmail: "Customer@Example.COM",
		DateTime:      slot,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if created.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if created.CustomerEmail != "customer@example.com" {
		t.Fatalf("expected lowercased email, got %s", created.CustomerEmail)
	}
	if created.Status != "confirmed" {
		t.Fatalf("expected status confirmed, got %s", created.Status)
	}

	got, err := st.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if got.BarberID != created.BarberID ||
		got.CustomerEmail != created.CustomerEmail ||
		!got.DateTime.Equal(created.DateTime) ||
		!got.CreatedAt.Equal(created.CreatedAt) ||
		got.Status != created.Status {
		t.Fatalf("stored booking differs: got %+v want %+v", got, created)
	}
}

// A cancelled booking still blocks its slot in the create path. The display
// filter excludes cancelled bookings, but re-booking over one is rejected.
func TestCreateBooking_CancelledStillBlocksSlot(t *testing.T) {
	uc, st := newCreateUC(t)
	cancelUC := NewCancelBooking(st, audit.NewDispatcher(zap.NewNop()))
	slot := nextMonday(t).Add(11 * time.Hour)

	created, err := uc.Execute(context.Background(), CreateBookingInput{
		BarberID: "1", CustomerEmail: "a@b.com", DateTime: slot,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := cancelUC.Execute(context.Background(), created.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	_, err = uc.Execute(context.Background(), CreateBookingInput{
		BarberID: "1", CustomerEmail: "c@d.com", DateTime: slot,
	})
	if !httperr.IsBusiness(err, httperr.CodeSlotConflict) {
		t.Fatalf("expected cancelled booking to still block the slot, got %v", err)
	}
}
