package models

// Barber is reference data owned by the external directory; this service only
// reads it.
type Barber struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	WorkSchedule WorkSchedule `json:"workSchedule"`
}

// DaySchedule holds opening hours as "HH:MM" wall-clock strings. Both fields
// empty means the barber is closed that day.
type DaySchedule struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (d DaySchedule) Closed() bool {
	return d.Start == "" || d.End == ""
}

type WorkSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}
