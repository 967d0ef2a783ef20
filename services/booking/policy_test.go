package booking

import (
	"testing"
	"time"

	"palmcove/models"

	"github.com/stretchr/testify/assert"
)

var policyNow = time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

func bookingAt(checkIn time.Time, nights int, status models.BookingStatus) models.Booking {
	return models.Booking{
		ID:          "BKTEST",
		CheckIn:     checkIn,
		CheckOut:    checkIn.AddDate(0, 0, nights),
		TotalAmount: 8500,
		Status:      status,
	}
}

func TestCalculateRefundTiers(t *testing.T) {
	tests := []struct {
		name   string
		ahead  time.Duration
		pct    int
		amount int64
		policy string
	}{
		{"72 hours ahead", 72 * time.Hour, 100, 8500, PolicyFullRefund},
		{"exactly 48 hours", 48 * time.Hour, 100, 8500, PolicyFullRefund},
		{"47 hours ahead", 47 * time.Hour, 50, 4250, PolicyPartialRefund},
		{"exactly 24 hours", 24 * time.Hour, 50, 4250, PolicyPartialRefund},
		{"23 hours ahead", 23 * time.Hour, 0, 0, PolicyNoRefund},
		{"check-in passed", -5 * time.Hour, 0, 0, PolicyNoRefund},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := bookingAt(policyNow.Add(tc.ahead), 2, models.StatusConfirmed)
			refund := CalculateRefund(policyNow, b)
			assert.Equal(t, tc.pct, refund.Percentage)
			assert.Equal(t, tc.amount, refund.Amount)
			assert.Equal(t, tc.policy, refund.Policy)
		})
	}
}

func TestCalculateRefundFloorsOddAmounts(t *testing.T) {
	b := bookingAt(policyNow.Add(30*time.Hour), 1, models.StatusConfirmed)
	b.TotalAmount = 8501
	assert.Equal(t, int64(4250), CalculateRefund(policyNow, b).Amount)
}

func TestCanCancelPastBooking(t *testing.T) {
	yesterday := policyNow.AddDate(0, 0, -1)
	for _, status := range []models.BookingStatus{models.StatusConfirmed, models.StatusPending, models.StatusCancelled} {
		b := bookingAt(yesterday.AddDate(0, 0, -2), 2, status)
		got := CanCancel(policyNow, b)
		assert.False(t, got.Allowed, "status %s", status)
		assert.Equal(t, CodePastBooking, got.Code)
	}
}

func TestCanCancelCheckoutTodayIsNotPast(t *testing.T) {
	// Checked out at 08:00 today, two hours before now.
	checkOut := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)
	b := models.Booking{CheckIn: checkOut.AddDate(0, 0, -3), CheckOut: checkOut, Status: models.StatusConfirmed}

	got := CanCancel(policyNow, b)
	assert.True(t, got.Allowed)
}

func TestCanCancelWithinLastHour(t *testing.T) {
	for _, ahead := range []time.Duration{0, 30 * time.Minute, time.Hour} {
		b := bookingAt(policyNow.Add(ahead), 2, models.StatusConfirmed)
		got := CanCancel(policyNow, b)
		assert.False(t, got.Allowed, "ahead %s", ahead)
		assert.Equal(t, CodeTooCloseToCheckIn, got.Code)
	}
}

func TestCanCancelJustOutsideLastHour(t *testing.T) {
	b := bookingAt(policyNow.Add(time.Hour+time.Second), 2, models.StatusConfirmed)
	assert.True(t, CanCancel(policyNow, b).Allowed)
}

func TestCanCancelStayInProgress(t *testing.T) {
	b := bookingAt(policyNow.Add(-20*time.Hour), 3, models.StatusConfirmed)
	assert.True(t, CanCancel(policyNow, b).Allowed)
}

func TestCanCancelRequiresConfirmed(t *testing.T) {
	for _, status := range []models.BookingStatus{models.StatusPending, models.StatusCancelled} {
		b := bookingAt(policyNow.Add(72*time.Hour), 2, status)
		got := CanCancel(policyNow, b)
		assert.False(t, got.Allowed)
		assert.Equal(t, CodeNotConfirmed, got.Code)
	}

	b := bookingAt(policyNow.Add(72*time.Hour), 2, models.StatusConfirmed)
	assert.Equal(t, Eligibility{Allowed: true}, CanCancel(policyNow, b))
}

func TestCanCancelComparesDaysInNowLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 00:30 on Oct 15 in Tokyo is still Oct 14 in UTC.
	now := time.Date(2026, 10, 15, 0, 30, 0, 0, tokyo)
	checkOut := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC) // 21:00 Oct 14 in Tokyo
	b := models.Booking{CheckIn: checkOut.AddDate(0, 0, -2), CheckOut: checkOut, Status: models.StatusConfirmed}

	assert.Equal(t, CodePastBooking, CanCancel(now, b).Code)
	assert.True(t, CanCancel(now.In(time.UTC), b).Allowed)
}
