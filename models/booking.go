package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending" // reserved for a payment step; nothing produces it yet
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents one reservation.
type Booking struct {
	ID              string        `bson:"id" json:"id"`                                               // e.g. "BKMF3K2Q1A7C9D2E"
	RoomType        string        `bson:"room_type" json:"roomType"`                                  // Display name of the booked room
	CheckIn         time.Time     `bson:"check_in" json:"checkIn"`                                    // Arrival
	CheckOut        time.Time     `bson:"check_out" json:"checkOut"`                                  // Departure, after CheckIn
	Guests          int           `bson:"guests" json:"guests"`                                       // Positive
	TotalAmount     int64         `bson:"total_amount" json:"totalAmount"`                            // Whole currency units
	Name            string        `bson:"name" json:"name"`                                           // Guest name
	Email           string        `bson:"email" json:"email"`                                         // Lookup key for "my bookings"
	EmailLower      string        `bson:"email_lower" json:"-"`                                       // Lowercased Email, indexed
	Phone           string        `bson:"phone" json:"phone"`                                         // Contact phone
	Address         string        `bson:"address,omitempty" json:"address,omitempty"`                 // Optional
	SpecialRequests string        `bson:"special_requests,omitempty" json:"specialRequests,omitempty"` // Optional
	Status          BookingStatus `bson:"status" json:"status"`                                       // confirmed, pending or cancelled
	CreatedAt       time.Time     `bson:"created_at" json:"createdAt"`                                // Immutable
	Cancellation    *Cancellation `bson:"cancellation,omitempty" json:"cancellation,omitempty"`       // Set once cancelled
}

// Cancellation records the refund granted when a booking was cancelled.
type Cancellation struct {
	CancelledAt      time.Time `bson:"cancelled_at" json:"cancelledAt"`
	RefundPercentage int       `bson:"refund_percentage" json:"refundPercentage"`
	RefundAmount     int64     `bson:"refund_amount" json:"refundAmount"`
	Policy           string    `bson:"policy" json:"policy"`
}

// BookingInput is the booking form payload. Dates are "YYYY-MM-DD" or RFC 3339.
type BookingInput struct {
	RoomType        string `json:"roomType" validate:"required"`
	CheckIn         string `json:"checkIn" validate:"required"`
	CheckOut        string `json:"checkOut" validate:"required"`
	Guests          int    `json:"guests" validate:"required,min=1"`
	TotalAmount     int64  `json:"totalAmount" validate:"min=0"`
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	Address         string `json:"address"`
	SpecialRequests string `json:"specialRequests"`
}

// Refund is the outcome of applying the refund tiers to a booking.
type Refund struct {
	Percentage int    `json:"percentage"`
	Amount     int64  `json:"amount"`
	Policy     string `json:"policy"`
}

// CancellationQuote previews what cancelling a booking right now would do.
type CancellationQuote struct {
	BookingID string  `json:"bookingId"`
	Eligible  bool    `json:"eligible"`
	Code      string  `json:"code,omitempty"`
	Reason    string  `json:"reason,omitempty"`
	Refund    *Refund `json:"refund,omitempty"`
}

// BookingBuckets groups a guest's bookings for the dashboard.
type BookingBuckets struct {
	Confirmed []Booking `json:"confirmed"`
	Past      []Booking `json:"past"`
	Cancelled []Booking `json:"cancelled"`
}
