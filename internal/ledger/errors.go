package ledger

import (
	"errors"
	"fmt"
)

// Sentinel errors for the inventory core. Repositories and services wrap these
// with context via fmt.Errorf("...: %w", ...); handlers match them with errors.Is.
var (
	// ErrNotFound marks a lookup for a product, transaction, category, or
	// supplier that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock marks an OUT-direction delta that would drive a
	// product's stock below zero. The stock is left unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInconsistentState marks a reversal or compensation that could not be
	// applied. It indicates prior stock corruption and is not user-correctable.
	ErrInconsistentState = errors.New("inconsistent stock state")
)

// ValidationError reports malformed input: an unknown movement type, a
// non-positive quantity, or a missing required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
