package domain

import (
	"errors"
	"fmt"
)

// Error kinds shared by every layer. Build them with Errorf so the message stays
// caller-facing; handlers map kinds to HTTP responses with errors.Is.
var (
	// ErrValidation malformed or missing input
	ErrValidation = errors.New("validation error")

	// ErrNotFound referenced entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidState operation is not legal for the current lifecycle state
	ErrInvalidState = errors.New("invalid state")

	// ErrSchedulingConflict window overlaps a scheduled appointment of the same provider
	ErrSchedulingConflict = errors.New("scheduling conflict")

	// ErrOutOfHours window is outside the provider's working hours
	ErrOutOfHours = errors.New("outside working hours")

	// ErrPastDate start time already elapsed
	ErrPastDate = errors.New("date is in the past")

	// ErrDuplicatePayment the appointment already has a payment
	ErrDuplicatePayment = errors.New("payment already exists")

	// ErrAlreadyExists unique catalog attribute is taken (service name, customer email)
	ErrAlreadyExists = errors.New("already exists")
)

// Kind returns the machine-readable code for a taxonomy error, or "" for
// anything outside the taxonomy.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrSchedulingConflict):
		return "SCHEDULING_CONFLICT"
	case errors.Is(err, ErrOutOfHours):
		return "OUT_OF_HOURS"
	case errors.Is(err, ErrPastDate):
		return "PAST_DATE"
	case errors.Is(err, ErrDuplicatePayment):
		return "DUPLICATE_PAYMENT"
	case errors.Is(err, ErrInvalidState):
		return "INVALID_STATE"
	case errors.Is(err, ErrAlreadyExists):
		return "ALREADY_EXISTS"
	default:
		return ""
	}
}

// Error is a taxonomy error carrying a caller-facing message.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// Errorf returns an error of the given kind whose message is the formatted text only.
func Errorf(kind error, format string, args ...interface{}) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}
