package routes

import (
	"palmcove/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookings := r.Group("/api/bookings")
	{
		bookings.POST("", hb.CreateBookingHandler)
		bookings.GET("", hb.ListBookingsHandler)
		bookings.GET("/:id", hb.GetBookingHandler)
		bookings.GET("/:id/cancellation", hb.QuoteCancellationHandler) // Refund preview, no changes
		bookings.POST("/:id/cancel", hb.CancelBookingHandler)
	}

	r.GET("/api/dashboard", hb.DashboardHandler)
}
