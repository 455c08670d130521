// Package errors defines the sentinel errors shared by all domain modules.
// Use cases wrap these into domain-specific errors; handlers map them to
// HTTP status codes without inspecting error strings.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist. It also
	// covers resources owned by another user, which are deliberately
	// indistinguishable from missing ones.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the request lacks valid authentication credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the authenticated user doesn't have permission.
	ErrForbidden = errors.New("forbidden")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap annotates err with message while keeping the error chain intact, so
// sentinel checks still work on the wrapped error. Returns nil for a nil err.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
