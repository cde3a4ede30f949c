// ================== pkg/errors/errors.go =================
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrValidation        = errors.New("validation failed")
	ErrStore             = errors.New("store operation failed")
)

// NotFound wraps ErrNotFound with the name of the missing resource.
func NotFound(resource string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, resource)
}

// InvalidTransition wraps ErrInvalidTransition with a reason.
func InvalidTransition(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidTransition, reason)
}

// Validation wraps ErrValidation with a reason.
func Validation(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// Store wraps an underlying database error. Store failures surface to the
// caller unchanged and are never retried here.
func Store(err error) error {
	return fmt.Errorf("%w: %v", ErrStore, err)
}

func IsNotFound(err error) bool          { return errors.Is(err, ErrNotFound) }
func IsInvalidTransition(err error) bool { return errors.Is(err, ErrInvalidTransition) }
func IsValidation(err error) bool        { return errors.Is(err, ErrValidation) }
func IsStore(err error) bool             { return errors.Is(err, ErrStore) }
