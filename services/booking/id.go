package booking

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const bookingIDPrefix = "BK"

// NewBookingID returns "BK" + base36 milliseconds + 12 random hex characters.
// Ids created later sort after earlier ones as long as the timestamp width is stable.
func NewBookingID(now time.Time) string {
	stamp := strconv.FormatInt(now.UnixMilli(), 36)
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return bookingIDPrefix + strings.ToUpper(stamp+random)
}
