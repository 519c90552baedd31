package barberapi

import "github.com/BruksfildServices01/barber-booking/internal/models"

// defaultBarbers is the dataset served when the provider is down. It exists to
// keep the booking flow demonstrable, not as a correctness requirement.
func defaultBarbers() []models.Barber {
	weekdays := models.DaySchedule{Start: "09:00", End: "18:00"}
	saturday := models.DaySchedule{Start: "10:00", End: "16:00"}
	closed := models.DaySchedule{}

	return []models.Barber{
		{
			ID:   "1",
			Name: "Marco Silva",
			WorkSchedule: models.WorkSchedule{
				Monday:    weekdays,
				Tuesday:   weekdays,
				Wednesday: weekdays,
				Thursday:  weekdays,
				Friday:    weekdays,
				Saturday:  saturday,
				Sunday:    closed,
			},
		},
		{
			ID:   "2",
			Name: "Rafael Costa",
			WorkSchedule: models.WorkSchedule{
				Monday:    closed,
				Tuesday:   weekdays,
				Wednesday: weekdays,
				Thursday:  weekdays,
				Friday:    weekdays,
				Saturday:  saturday,
				Sunday:    closed,
			},
		},
		{
			ID:   "3",
			Name: "André Oliveira",
			WorkSchedule: models.WorkSchedule{
				Monday:    weekdays,
				Tuesday:   weekdays,
				Wednesday: closed,
				Thursday:  weekdays,
				Friday:    weekdays,
				Saturday:  saturday,
				Sunday:    closed,
			},
		},
	}
}
