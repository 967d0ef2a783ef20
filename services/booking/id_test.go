package booking

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingIDFormat(t *testing.T) {
	id := NewBookingID(time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC))
	assert.Regexp(t, regexp.MustCompile(`^BK[0-9A-Z]+[0-9A-F]{12}$`), id)
}

func TestNewBookingIDUnique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := NewBookingID(now)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNewBookingIDSortsByTime(t *testing.T) {
	earlier := NewBookingID(time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC))
	later := NewBookingID(time.Date(2026, 10, 14, 10, 0, 1, 0, time.UTC))
	assert.Less(t, earlier[:10], later[:10])
}
