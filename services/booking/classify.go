package booking

import (
	"sort"
	"time"

	"palmcove/models"
)

// Classify partitions bookings into the dashboard buckets. Cancelled bookings
// go to Cancelled regardless of dates; the rest go to Past once their checkout
// day is before today, otherwise to Confirmed. Each bucket is ordered by check-in.
func Classify(now time.Time, bookings []models.Booking) models.BookingBuckets {
	buckets := models.BookingBuckets{
		Confirmed: []models.Booking{},
		Past:      []models.Booking{},
		Cancelled: []models.Booking{},
	}

	for _, b := range bookings {
		switch {
		case b.Status == models.StatusCancelled:
			buckets.Cancelled = append(buckets.Cancelled, b)
		case isPast(now, b):
			buckets.Past = append(buckets.Past, b)
		default:
			buckets.Confirmed = append(buckets.Confirmed, b)
		}
	}

	for _, bucket := range [][]models.Booking{buckets.Confirmed, buckets.Past, buckets.Cancelled} {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].CheckIn.Before(bucket[j].CheckIn)
		})
	}
	return buckets
}
