package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	log *zap.Logger,
	store domain.Store,
	dir domain.Directory,
) {

	// ======================================================
	// INFRA
	// ======================================================
	auditDispatcher := audit.NewDispatcher(log)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(store, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(store, auditDispatcher)
	deleteBookingUC := ucBooking.NewDeleteBooking(store, auditDispatcher)
	getBookingUC := ucBooking.NewGetBooking(store)
	listByEmailUC := ucBooking.NewListBookingsByEmail(store)
	availabilityUC := ucBooking.NewGetAvailability(dir, store)

	// ======================================================
	// HANDLERS
	// ======================================================
	barberHandler := handlers.NewBarberHandler(dir, availabilityUC)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		deleteBookingUC,
		getBookingUC,
		listByEmailUC,
	)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.MaxRequestsPerMin))
	api.Use(middleware.APIKeyAuth(cfg))
	{
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.Get)
		api.GET("/barbers/:id/availability", barberHandler.Availability)

		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings", bookingHandler.ListByEmail)
		api.GET("/bookings/:id", bookingHandler.Get)
		api.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
		api.DELETE("/bookings/:id", bookingHandler.Delete)
	}
}
