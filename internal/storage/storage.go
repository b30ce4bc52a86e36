package storage

import "errors"

// Sentinel errors of the storage layer. Services translate them into the
// business-level error kinds before they reach a handler.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrStatusConflict reports a status transition whose expected current
	// status no longer matches, e.g. a lost approve/reject race.
	ErrStatusConflict = errors.New("booking status conflict")
)
