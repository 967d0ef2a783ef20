package booking

import (
	"time"

	"palmcove/models"
)

// Reasons a cancellation can be refused.
const (
	CodePastBooking       = "past_booking"
	CodeTooCloseToCheckIn = "too_close_to_check_in"
	CodeNotConfirmed      = "not_confirmed"
)

// Refund tiers, keyed by hours remaining until check-in.
const (
	fullRefundHours    = 48
	partialRefundHours = 24
	lastHourWindow     = 1
)

const (
	PolicyFullRefund    = "Free cancellation, full refund"
	PolicyPartialRefund = "Partial refund (50%)"
	PolicyNoRefund      = "No refund"
)

// Eligibility is the outcome of CanCancel.
type Eligibility struct {
	Allowed bool
	Code    string
	Reason  string
}

// startOfDay truncates t to midnight in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// HoursUntilCheckIn is negative once check-in has passed.
func HoursUntilCheckIn(now time.Time, b models.Booking) float64 {
	return b.CheckIn.Sub(now).Hours()
}

// isPast reports whether checkout fell on a day before today, ignoring time of day.
func isPast(now time.Time, b models.Booking) bool {
	loc := now.Location()
	return startOfDay(b.CheckOut, loc).Before(startOfDay(now, loc))
}

// CanCancel decides whether b may be cancelled at now.
//
// The date check compares calendar days in now's location while the last-hour
// window compares exact timestamps. A stay already in progress (check-in passed,
// checkout today or later) stays cancellable while confirmed.
func CanCancel(now time.Time, b models.Booking) Eligibility {
	if isPast(now, b) {
		return Eligibility{Code: CodePastBooking, Reason: "Cannot cancel a past booking"}
	}

	hours := HoursUntilCheckIn(now, b)
	if hours >= 0 && hours <= lastHourWindow {
		return Eligibility{Code: CodeTooCloseToCheckIn, Reason: "Cannot cancel within 1 hour of check-in"}
	}

	if b.Status != models.StatusConfirmed {
		return Eligibility{Code: CodeNotConfirmed, Reason: "Only confirmed bookings can be cancelled"}
	}
	return Eligibility{Allowed: true}
}

// CalculateRefund applies the refund tiers to b.TotalAmount. It does not check
// eligibility; callers must consult CanCancel first.
func CalculateRefund(now time.Time, b models.Booking) models.Refund {
	hours := HoursUntilCheckIn(now, b)

	var pct int
	var policy string
	switch {
	case hours >= fullRefundHours:
		pct, policy = 100, PolicyFullRefund
	case hours >= partialRefundHours:
		pct, policy = 50, PolicyPartialRefund
	default:
		pct, policy = 0, PolicyNoRefund
	}

	return models.Refund{
		Percentage: pct,
		Amount:     b.TotalAmount * int64(pct) / 100,
		Policy:     policy,
	}
}
