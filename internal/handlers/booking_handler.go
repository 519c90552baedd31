package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC      *ucBooking.CreateBooking
	cancelUC      *ucBooking.CancelBooking
	deleteUC      *ucBooking.DeleteBooking
	getUC         *ucBooking.GetBooking
	listByEmailUC *ucBooking.ListBookingsByEmail
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
	deleteUC *ucBooking.DeleteBooking,
	getUC *ucBooking.GetBooking,
	listByEmailUC *ucBooking.ListBookingsByEmail,
) *BookingHandler {
	return &BookingHandler{
		createUC:      createUC,
		cancelUC:      cancelUC,
		deleteUC:      deleteUC,
		getUC:         getUC,
		listByEmailUC: listByEmailUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID      string `json:"barberId" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required"`
	DateTime      string `json:"dateTime" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request",
			"Missing required fields: barberId, customerEmail, dateTime.")
		return
	}

	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_time",
			"Invalid dateTime; expected an ISO-8601 instant.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		BarberID:      req.BarberID,
		CustomerEmail: req.CustomerEmail,
		DateTime:      dateTime,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, b, "Booking created successfully")
}

// ======================================================
// LOOKUPS
// ======================================================

func (h *BookingHandler) ListByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.BadRequest(c, "missing_email", "Email query parameter is required.")
		return
	}

	bookings, err := h.listByEmailUC.Execute(c.Request.Context(), email)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, bookings, fmt.Sprintf("Found %d bookings", len(bookings)))
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b, "Booking found")
}

// ======================================================
// CANCEL / DELETE
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	b, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b, "Booking cancelled successfully")
}

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, nil, "Booking deleted successfully")
}
