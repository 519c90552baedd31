package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// writeBusinessError maps domain error codes onto HTTP responses. Anything
// that is not a business error becomes a generic 500 with no internals leaked.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Internal server error.")
		return
	}

	switch code {
	case httperr.CodeInvalidEmail:
		httperr.BadRequest(c, code, "Invalid email format.")
	case httperr.CodePastDateTime:
		httperr.BadRequest(c, code, "Cannot book appointments in the past.")
	case httperr.CodeSlotConflict:
		httperr.BadRequest(c, code, "This time slot is already booked.")
	case httperr.CodeBookingNotFound:
		httperr.NotFound(c, code, "Booking not found.")
	case httperr.CodeBarberNotFound:
		httperr.NotFound(c, code, "Barber not found.")
	case httperr.CodeProviderUnavailable:
		httperr.Unavailable(c, code, "Barber directory is unavailable.")
	default:
		httperr.Internal(c, code, "Internal server error.")
	}
}
