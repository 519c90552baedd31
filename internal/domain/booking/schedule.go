package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ScheduleFor returns the barber's opening hours for the given weekday.
// Pure lookup, total over the seven weekdays.
func ScheduleFor(ws models.WorkSchedule, weekday time.Weekday) models.DaySchedule {
	switch weekday {
	case time.Monday:
		return ws.Monday
	case time.Tuesday:
		return ws.Tuesday
	case time.Wednesday:
		return ws.Wednesday
	case time.Thursday:
		return ws.Thursday
	case time.Friday:
		return ws.Friday
	case time.Saturday:
		return ws.Saturday
	default:
		return ws.Sunday
	}
}
