package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"palmcove/database/repository"
	"palmcove/models"
	"palmcove/utils"

	"go.uber.org/zap"
)

// maxIDAttempts bounds id regeneration when the store reports a collision.
const maxIDAttempts = 3

// CreateBooking validates the form, then stores a confirmed booking under a fresh id.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.RoomType = strings.TrimSpace(input.RoomType)

	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	checkIn, err := parseStayDate("checkIn", input.CheckIn, s.Location)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseStayDate("checkOut", input.CheckOut, s.Location)
	if err != nil {
		return nil, err
	}
	if !checkOut.After(checkIn) {
		return nil, utils.NewValidationError("checkOut", "checkOut must be after checkIn")
	}

	now := s.now()
	b := &models.Booking{
		RoomType:        input.RoomType,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          input.Guests,
		TotalAmount:     input.TotalAmount,
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Address:         strings.TrimSpace(input.Address),
		SpecialRequests: strings.TrimSpace(input.SpecialRequests),
		Status:          models.StatusConfirmed,
		CreatedAt:       now,
	}

	for attempt := 1; ; attempt++ {
		b.ID = NewBookingID(now)
		err = s.Store.CreateBooking(ctx, b)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicateID) || attempt == maxIDAttempts {
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}
		s.Logger.Warn("Booking id collision, regenerating", zap.String("id", b.ID), zap.Int("attempt", attempt))
	}

	s.Logger.Info("Booking created",
		zap.String("id", b.ID),
		zap.String("roomType", b.RoomType),
		zap.Time("checkIn", b.CheckIn),
	)
	return b, nil
}

func (s *DefaultBookingService) GetBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Store.GetBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, utils.NewValidationError("email", "email is required")
	}
	bookings, err := s.Store.GetBookingsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for %s: %w", email, err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Store.GetBooking(ctx, id)
}

func (s *DefaultBookingService) Dashboard(ctx context.Context, email string) (*models.BookingBuckets, error) {
	bookings, err := s.GetBookingsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	buckets := Classify(s.now(), bookings)
	return &buckets, nil
}

func (s *DefaultBookingService) QuoteCancellation(ctx context.Context, id string) (*models.CancellationQuote, error) {
	b, err := s.Store.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	quote := &models.CancellationQuote{BookingID: b.ID}
	eligibility := CanCancel(now, *b)
	if !eligibility.Allowed {
		quote.Code = eligibility.Code
		quote.Reason = eligibility.Reason
		return quote, nil
	}

	refund := CalculateRefund(now, *b)
	quote.Eligible = true
	quote.Refund = &refund
	return quote, nil
}

// CancelBooking re-checks eligibility, computes the refund tier and moves the
// booking to cancelled. A rejected request returns *CancellationRejectedError.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string) (*models.Booking, *models.Refund, error) {
	b, err := s.Store.GetBooking(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	eligibility := CanCancel(now, *b)
	if !eligibility.Allowed {
		s.Logger.Info("Cancellation rejected", zap.String("id", id), zap.String("code", eligibility.Code))
		return nil, nil, newCancellationRejected(id, eligibility)
	}

	refund := CalculateRefund(now, *b)
	cancelled, err := s.Store.CancelBooking(ctx, id, models.Cancellation{
		CancelledAt:      now,
		RefundPercentage: refund.Percentage,
		RefundAmount:     refund.Amount,
		Policy:           refund.Policy,
	})
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			// Lost a race with another cancel.
			return nil, nil, newCancellationRejected(id, Eligibility{
				Code:   CodeNotConfirmed,
				Reason: "Only confirmed bookings can be cancelled",
			})
		}
		return nil, nil, fmt.Errorf("failed to cancel booking %s: %w", id, err)
	}

	s.Logger.Info("Booking cancelled",
		zap.String("id", id),
		zap.Int("refundPercentage", refund.Percentage),
		zap.Int64("refundAmount", refund.Amount),
	)
	return cancelled, &refund, nil
}
