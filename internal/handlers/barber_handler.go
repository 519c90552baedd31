package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

type BarberHandler struct {
	dir            domain.Directory
	availabilityUC *ucBooking.GetAvailability
}

func NewBarberHandler(
	dir domain.Directory,
	availabilityUC *ucBooking.GetAvailability,
) *BarberHandler {
	return &BarberHandler{
		dir:            dir,
		availabilityUC: availabilityUC,
	}
}

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.dir.ListBarbers(c.Request.Context())
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, barbers, "Barbers fetched successfully")
}

func (h *BarberHandler) Get(c *gin.Context) {
	barber, err := h.dir.GetBarber(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, barber, "Barber found")
}

// Availability returns the annotated 30-minute slots for one barber and day.
// The date is interpreted in the server's local timezone.
func (h *BarberHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date query parameter is required.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date; expected YYYY-MM-DD.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, slots, "Availability fetched successfully")
}
