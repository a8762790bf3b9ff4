package domain

import "errors"

var (
	ErrCourtNotFound       = errors.New("court not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

// Validation failures: nothing is written, the caller gets a field-level message.
var (
	ErrPastDate     = errors.New("reservation date is in the past")
	ErrOutOfHours   = errors.New("start time is outside the 08:00-22:00 operating window")
	ErrInvalidRange = errors.New("end time must be after start time")
	ErrValidation   = errors.New("validation error")
)

// ErrSlotTaken is the booking conflict: another confirmed reservation
// already holds the (court, date, start) slot. Raised either by the
// pre-write availability check or by the commit-time unique index.
var ErrSlotTaken = errors.New("slot already reserved")

var ErrEmailTaken = errors.New("email is already registered")
