package api

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Error is a business-rule rejection reported by the backend (invalid coupon,
// order already paid, validation failure). Message is surfaced to the user
// verbatim; Status keeps the HTTP code for callers that care.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
