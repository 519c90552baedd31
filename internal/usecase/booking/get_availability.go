package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type GetAvailability struct {
	dir         domain.Directory
	listByDayUC *ListBookingsByBarberAndDate
}

func NewGetAvailability(
	dir domain.Directory,
	store domain.Store,
) *GetAvailability {
	return &GetAvailability{
		dir:         dir,
		listByDayUC: NewListBookingsByBarberAndDate(store),
	}
}

// Execute derives the barber's slots for one day and marks the ones taken by
// existing bookings. Slots are regenerated on every call, never persisted.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID string,
	date time.Time,
) ([]domain.TimeSlot, error) {

	barber, err := uc.dir.GetBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	ds := domain.ScheduleFor(barber.WorkSchedule, date.Weekday())
	slots := domain.GenerateSlots(ds, date)
	if len(slots) == 0 {
		return []domain.TimeSlot{}, nil
	}

	sameDay, err := uc.listByDayUC.Execute(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	return domain.Annotate(slots, sameDay), nil
}
