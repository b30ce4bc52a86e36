package service

import (
	"errors"
	"fmt"
)

// Error kinds of the business layer. Handlers match them with errors.Is and
// map onto HTTP statuses: validation -> 400, not found -> 404,
// not available -> 409. "Not found" is deliberately reused for entities the
// caller is not allowed to see, so denial is indistinguishable from absence.
var (
	ErrValidation   = errors.New("invalid request")
	ErrNotFound     = errors.New("not found")
	ErrNotAvailable = errors.New("not available")
)

func Validationf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, a...))
}

func NotFoundf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, a...))
}

func NotAvailablef(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrNotAvailable, fmt.Sprintf(format, a...))
}
