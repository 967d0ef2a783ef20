package repository

import (
	"context"
	"errors"

	"palmcove/models"
)

var (
	// ErrNotFound is returned when a booking or room does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateID is returned when a record with the same id already exists.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrStatusConflict is returned when a status transition's precondition fails.
	ErrStatusConflict = errors.New("status conflict")
)

// Store is the storage capability set shared by every backend.
type Store interface {
	// CreateBooking inserts a fully formed booking.
	CreateBooking(ctx context.Context, b *models.Booking) error
	// GetBookings returns all bookings in insertion order.
	GetBookings(ctx context.Context) ([]models.Booking, error)
	// GetBookingsByEmail returns the bookings whose email matches, ignoring case.
	GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// GetBooking retrieves one booking by id.
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	// CancelBooking moves a confirmed booking to cancelled and records the refund.
	// It fails with ErrStatusConflict if the booking is not confirmed.
	CancelBooking(ctx context.Context, id string, c models.Cancellation) (*models.Booking, error)

	CreateContact(ctx context.Context, c *models.Contact) error
	GetContacts(ctx context.Context) ([]models.Contact, error)

	GetRooms(ctx context.Context) ([]models.Room, error)
	GetRoom(ctx context.Context, id int) (*models.Room, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
