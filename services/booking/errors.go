package booking

import "fmt"

// ConflictError signals that a new booking overlaps an existing active
// booking on the same day. Creation is rejected rather than recorded, so the
// calendar can never show a double-booked slot that the API accepted.
type ConflictError struct {
	Date  string
	Start string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("booking conflict on %s at %s", e.Date, e.Start)
}

// ValidationError reports a rejected booking payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
