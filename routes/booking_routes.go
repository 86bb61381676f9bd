package routes

import (
	"gorent/internal/handlers"
	"gorent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes sets up the booking lifecycle routes. Renters
// request and complete, owners accept or reject.
func SetupBookingRoutes(r *gin.RouterGroup, bookingHandler *handlers.BookingHandler, jwtSecret string) {
	renter := r.Group("/bookings")
	renter.Use(middleware.AuthRequired(jwtSecret), middleware.RenterRequired())
	{
		renter.POST("/vehicles/:vehicleId", bookingHandler.CreateBooking)
		renter.GET("/my", bookingHandler.MyBookings)
		renter.PUT("/:id/complete", bookingHandler.CompleteBooking)
	}

	owner := r.Group("/bookings")
	owner.Use(middleware.AuthRequired(jwtSecret), middleware.OwnerRequired())
	{
		owner.GET("/owner", bookingHandler.OwnerBookings)
		owner.PUT("/:id/accept", bookingHandler.AcceptBooking)
		owner.PUT("/:id/reject", bookingHandler.RejectBooking)
	}
}
