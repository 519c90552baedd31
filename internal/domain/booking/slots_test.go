package booking

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func day(t *testing.T, loc *time.Location) time.Time {
	t.Helper()
	return time.Date(2026, 9, 7, 0, 0, 0, 0, loc)
}

func TestGenerateSlots_FullDay(t *testing.T) {
	loc := time.UTC
	date := day(t, loc)

	slots := GenerateSlots(models.DaySchedule{Start: "09:00", End: "18:00"}, date)

	if len(slots) != 18 {
		t.Fatalf("expected 18 slots for 09:00-18:00, got %d", len(slots))
	}
	if slots[0].Time != "09:00" {
		t.Fatalf("expected first slot at 09:00, got %s", slots[0].Time)
	}
	if !slots[0].DateTime.Equal(date.Add(9 * time.Hour)) {
		t.Fatalf("expected first instant at 09:00, got %s", slots[0].DateTime.Format(time.RFC3339))
	}
	for i := 1; i < len(slots); i++ {
		if got := slots[i].DateTime.Sub(slots[i-1].DateTime); got != 30*time.Minute {
			t.Fatalf("expected 30m between slots %d and %d, got %v", i-1, i, got)
		}
	}
	for i, s := range slots {
		if !s.Available {
			t.Fatalf("expected freshly generated slot %d to be available", i)
		}
	}
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	slots := GenerateSlots(models.DaySchedule{}, day(t, time.UTC))
	if len(slots) != 0 {
		t.Fatalf("expected no slots on a closed day, got %d", len(slots))
	}
}

func TestGenerateSlots_DropsPartialInterval(t *testing.T) {
	// 09:00-10:15 holds two full slots; the trailing 15 minutes are dropped.
	slots := GenerateSlots(models.DaySchedule{Start: "09:00", End: "10:15"}, day(t, time.UTC))

	if len(slots) != 2 {
		t.Fatalf("expected 2 slots for 09:00-10:15, got %d", len(slots))
	}
	if slots[1].Time != "09:30" {
		t.Fatalf("expected last slot at 09:30, got %s", slots[1].Time)
	}
}

func TestGenerateSlots_CountMatchesWindow(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"08:00", "12:00", 8},
		{"10:00", "10:30", 1},
		{"10:00", "10:29", 0},
		{"00:00", "23:30", 47},
	}

	for _, tc := range cases {
		slots := GenerateSlots(models.DaySchedule{Start: tc.start, End: tc.end}, day(t, time.UTC))
		if len(slots) != tc.want {
			t.Fatalf("%s-%s: expected %d slots, got %d", tc.start, tc.end, tc.want, len(slots))
		}
	}
}

func TestAnnotate_ExactInstantOnly(t *testing.T) {
	loc := time.UTC
	date := day(t, loc)
	slots := GenerateSlots(models.DaySchedule{Start: "09:00", End: "11:00"}, date)

	bookings := []models.Booking{
		{BarberID: "1", DateTime: date.Add(9*time.Hour + 30*time.Minute), Status: string(StatusConfirmed)},
		// Not on a slot boundary; must not mark anything.
		{BarberID: "1", DateTime: date.Add(9*time.Hour + 45*time.Minute), Status: string(StatusConfirmed)},
	}

	out := Annotate(slots, bookings)

	if out[0].Available != true {
		t.Fatalf("expected 09:00 to stay available")
	}
	if out[1].Available != false {
		t.Fatalf("expected 09:30 to be taken")
	}
	if out[2].Available != true || out[3].Available != true {
		t.Fatalf("expected remaining slots to stay available")
	}
}

func TestAnnotate_SkipsCancelled(t *testing.T) {
	date := day(t, time.UTC)
	slots := GenerateSlots(models.DaySchedule{Start: "09:00", End: "10:00"}, date)

	bookings := []models.Booking{
		{DateTime: date.Add(9 * time.Hour), Status: string(StatusCancelled)},
	}

	out := Annotate(slots, bookings)
	if !out[0].Available {
		t.Fatalf("expected slot held only by a cancelled booking to be available")
	}
}

func TestAnnotate_InstantEqualityAcrossZones(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	date := day(t, loc)
	slots := GenerateSlots(models.DaySchedule{Start: "09:00", End: "10:00"}, date)

	// Same instant rendered in UTC must still collide.
	bookings := []models.Booking{
		{DateTime: date.Add(9 * time.Hour).UTC(), Status: string(StatusConfirmed)},
	}

	out := Annotate(slots, bookings)
	if out[0].Available {
		t.Fatalf("expected equal instants in different zones to conflict")
	}
}

func TestScheduleFor(t *testing.T) {
	ws := models.WorkSchedule{
		Monday: models.DaySchedule{Start: "09:00", End: "18:00"},
		Sunday: models.DaySchedule{},
	}

	mon := ScheduleFor(ws, time.Monday)
	if mon.Start != "09:00" || mon.End != "18:00" {
		t.Fatalf("unexpected monday schedule: %+v", mon)
	}

	sun := ScheduleFor(ws, time.Sunday)
	if !sun.Closed() {
		t.Fatalf("expected sunday to be closed")
	}
}
