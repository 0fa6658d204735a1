package apperrors

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is dispatch. The typed errors below unwrap to
// these, so callers can branch on kind without caring which collaborator
// produced the failure.
var (
	// ErrNotFound marks a lookup for an id with no stored record.
	// Absence is a normal outcome, not a fault.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks a well-formed rejection from a business rule.
	ErrValidation = errors.New("validation rejected")
	// ErrUnsupportedFormat marks a render request for a format no
	// presenter implementation supports.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// NotFoundError reports which id missed.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user %q: %v", e.ID, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ValidationError carries the first failing rule's reason.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrValidation, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// UnsupportedFormatError names the rejected format.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnsupportedFormat, e.Format)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }
