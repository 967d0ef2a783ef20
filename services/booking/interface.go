package booking

import (
	"context"
	"time"

	"palmcove/database/repository"
	"palmcove/models"

	"go.uber.org/zap"
)

// BookingService manages the booking lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	GetBookings(ctx context.Context) ([]models.Booking, error)
	GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	// Dashboard groups a guest's bookings into confirmed, past and cancelled.
	Dashboard(ctx context.Context, email string) (*models.BookingBuckets, error)
	// QuoteCancellation previews eligibility and refund without changing anything.
	QuoteCancellation(ctx context.Context, id string) (*models.CancellationQuote, error)
	CancelBooking(ctx context.Context, id string) (*models.Booking, *models.Refund, error)
}

// DefaultBookingService implements BookingService on top of a repository.Store.
type DefaultBookingService struct {
	Store    repository.Store
	Logger   *zap.Logger
	Location *time.Location
	Clock    func() time.Time
}

var _ BookingService = (*DefaultBookingService)(nil)

// NewBookingService wires a service for the given store. Dates are interpreted
// in loc; a nil loc means time.Local.
func NewBookingService(store repository.Store, logger *zap.Logger, loc *time.Location) *DefaultBookingService {
	if loc == nil {
		loc = time.Local
	}
	return &DefaultBookingService{
		Store:    store,
		Logger:   logger,
		Location: loc,
		Clock:    time.Now,
	}
}

func (s *DefaultBookingService) now() time.Time {
	return s.Clock().In(s.Location)
}
