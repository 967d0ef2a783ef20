package booking

import "fmt"

// CancellationRejectedError is returned when a booking is outside the
// cancellation window. Nothing is changed when it is returned.
type CancellationRejectedError struct {
	BookingID string
	Code      string
	Message   string
}

func (e *CancellationRejectedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newCancellationRejected(id string, e Eligibility) error {
	return &CancellationRejectedError{
		BookingID: id,
		Code:      e.Code,
		Message:   e.Reason,
	}
}
