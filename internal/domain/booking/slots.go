package booking

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// SlotMinutes is the fixed bookable slot length.
const SlotMinutes = 30

type TimeSlot struct {
	Time      string    `json:"time"`
	DateTime  time.Time `json:"dateTime"`
	Available bool      `json:"available"`
}

// GenerateSlots produces the ordered bookable slots for one calendar day.
// The day's hours are walked in fixed 30-minute steps; a trailing interval
// shorter than a full slot is dropped. An empty schedule yields no slots.
// Availability is schedule-only here; Annotate applies bookings afterwards.
func GenerateSlots(ds models.DaySchedule, date time.Time) []TimeSlot {
	if ds.Closed() {
		return nil
	}

	start, ok := minutesOfDay(ds.Start)
	if !ok {
		return nil
	}
	end, ok := minutesOfDay(ds.End)
	if !ok {
		return nil
	}

	loc := date.Location()

	var slots []TimeSlot
	for m := start; m+SlotMinutes <= end; m += SlotMinutes {
		at := time.Date(
			date.Year(), date.Month(), date.Day(),
			m/60, m%60, 0, 0,
			loc,
		)

		slots = append(slots, TimeSlot{
			Time:      fmt.Sprintf("%02d:%02d", m/60, m%60),
			DateTime:  at,
			Available: true,
		})
	}

	return slots
}

// Annotate marks each slot unavailable when a non-cancelled booking occupies
// the exact same instant. Slots are atomic fixed-length units, so instant
// equality is the whole conflict rule.
func Annotate(slots []TimeSlot, bookings []models.Booking) []TimeSlot {
	out := make([]TimeSlot, len(slots))
	copy(out, slots)

	for i := range out {
		for _, b := range bookings {
			if Active(b.Status) && b.DateTime.Equal(out[i].DateTime) {
				out[i].Available = false
				break
			}
		}
	}

	return out
}

func minutesOfDay(hm string) (int, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
