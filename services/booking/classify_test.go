package booking

import (
	"testing"
	"time"

	"palmcove/models"

	"github.com/stretchr/testify/assert"
)

func ids(bookings []models.Booking) []string {
	out := make([]string, len(bookings))
	for i, b := range bookings {
		out[i] = b.ID
	}
	return out
}

func TestClassify(t *testing.T) {
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	today := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		{ID: "upcoming-late", CheckIn: today.AddDate(0, 0, 10), CheckOut: today.AddDate(0, 0, 12), Status: models.StatusConfirmed},
		{ID: "past", CheckIn: today.AddDate(0, 0, -4), CheckOut: today.AddDate(0, 0, -1), Status: models.StatusConfirmed},
		{ID: "checkout-today", CheckIn: today.AddDate(0, 0, -2), CheckOut: today.Add(11 * time.Hour), Status: models.StatusConfirmed},
		{ID: "cancelled-past", CheckIn: today.AddDate(0, 0, -9), CheckOut: today.AddDate(0, 0, -7), Status: models.StatusCancelled},
		{ID: "upcoming-soon", CheckIn: today.AddDate(0, 0, 2), CheckOut: today.AddDate(0, 0, 3), Status: models.StatusConfirmed},
		{ID: "cancelled-future", CheckIn: today.AddDate(0, 0, 5), CheckOut: today.AddDate(0, 0, 6), Status: models.StatusCancelled},
		{ID: "older-past", CheckIn: today.AddDate(0, 0, -30), CheckOut: today.AddDate(0, 0, -28), Status: models.StatusConfirmed},
	}

	buckets := Classify(now, bookings)

	assert.Equal(t, []string{"checkout-today", "upcoming-soon", "upcoming-late"}, ids(buckets.Confirmed))
	assert.Equal(t, []string{"older-past", "past"}, ids(buckets.Past))
	assert.Equal(t, []string{"cancelled-past", "cancelled-future"}, ids(buckets.Cancelled))
}

func TestClassifyEmpty(t *testing.T) {
	buckets := Classify(time.Now(), nil)
	assert.NotNil(t, buckets.Confirmed)
	assert.NotNil(t, buckets.Past)
	assert.NotNil(t, buckets.Cancelled)
	assert.Empty(t, buckets.Confirmed)
}

func TestClassifyCheckoutEarlierToday(t *testing.T) {
	now := time.Date(2026, 10, 14, 23, 0, 0, 0, time.UTC)
	b := models.Booking{
		ID:       "left-this-morning",
		CheckIn:  time.Date(2026, 10, 12, 14, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 10, 14, 6, 0, 0, 0, time.UTC),
		Status:   models.StatusConfirmed,
	}

	buckets := Classify(now, []models.Booking{b})
	assert.Equal(t, []string{"left-this-morning"}, ids(buckets.Confirmed))
	assert.Empty(t, buckets.Past)
}
