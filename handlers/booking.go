package handlers

import (
	"net/http"

	"palmcove/models"
	"palmcove/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const bookingNotFound = "Booking not found"

type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		getLogger(c).Warn("Invalid booking payload", zap.Error(err))
		bindError(c, err)
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, bookingNotFound)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBookings handles GET /api/bookings, optionally filtered by ?email=.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var (
		bookings []models.Booking
		err      error
	)
	if email, ok := c.GetQuery("email"); ok {
		bookings, err = h.Service.GetBookingsByEmail(c.Request.Context(), email)
	} else {
		bookings, err = h.Service.GetBookings(c.Request.Context())
	}
	if err != nil {
		respondError(c, err, bookingNotFound)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, bookingNotFound)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Dashboard handles GET /api/dashboard?email=.
func (h *BookingHandler) Dashboard(c *gin.Context) {
	buckets, err := h.Service.Dashboard(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err, bookingNotFound)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

// QuoteCancellation handles GET /api/bookings/:id/cancellation.
func (h *BookingHandler) QuoteCancellation(c *gin.Context) {
	quote, err := h.Service.QuoteCancellation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, bookingNotFound)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	b, refund, err := h.Service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, bookingNotFound)
		return
	}

	getLogger(c).Info("Booking cancelled", zap.String("id", id), zap.Int64("refund", refund.Amount))
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled",
		"booking": b,
		"refund":  refund,
	})
}
