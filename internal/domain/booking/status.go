package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusConfirmed
}

// Active reports whether a booking in the given status still occupies its slot
// for display purposes.
func Active(status string) bool {
	return status != string(StatusCancelled)
}
