// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Health
	HealthHandler gin.HandlerFunc

	// Room catalog
	ListRoomsHandler gin.HandlerFunc
	GetRoomHandler   gin.HandlerFunc

	// Contact form
	SubmitContactHandler gin.HandlerFunc
	ListContactsHandler  gin.HandlerFunc

	// Bookings
	CreateBookingHandler     gin.HandlerFunc
	ListBookingsHandler      gin.HandlerFunc
	GetBookingHandler        gin.HandlerFunc
	DashboardHandler         gin.HandlerFunc
	QuoteCancellationHandler gin.HandlerFunc
	CancelBookingHandler     gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from the individual handlers.
func NewHandlerBundle(health *HealthHandler, rooms *RoomHandler, contacts *ContactHandler, bookings *BookingHandler) *HandlerBundle {
	return &HandlerBundle{
		HealthHandler: health.Health,

		ListRoomsHandler: rooms.ListRooms,
		GetRoomHandler:   rooms.GetRoom,

		SubmitContactHandler: contacts.SubmitContact,
		ListContactsHandler:  contacts.ListContacts,

		CreateBookingHandler:     bookings.CreateBooking,
		ListBookingsHandler:      bookings.ListBookings,
		GetBookingHandler:        bookings.GetBooking,
		DashboardHandler:         bookings.Dashboard,
		QuoteCancellationHandler: bookings.QuoteCancellation,
		CancelBookingHandler:     bookings.CancelBooking,
	}
}
