package booking

import (
	"strings"
	"time"

	"palmcove/utils"
)

const dateOnly = "2006-01-02"

// parseStayDate accepts "YYYY-MM-DD" (midnight in loc) or an RFC 3339 timestamp.
func parseStayDate(field, value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation(dateOnly, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, utils.NewValidationError(field, "%s must be a date (YYYY-MM-DD) or an RFC 3339 timestamp", field)
}
