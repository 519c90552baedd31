package httperr

import "errors"

// Business error codes shared across layers.
const (
	CodeInvalidEmail        = "invalid_email"
	CodePastDateTime        = "past_date_time"
	CodeSlotConflict        = "slot_conflict"
	CodeBookingNotFound     = "booking_not_found"
	CodeBarberNotFound      = "barber_not_found"
	CodeProviderUnavailable = "provider_unavailable"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
