package domain

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation error")
	ErrConflict            = errors.New("conflict")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	ErrFatal               = errors.New("fatal ledger failure")

	// ErrAlreadyExists is a Conflict raised by a duplicate key.
	ErrAlreadyExists = fmt.Errorf("already exists: %w", ErrConflict)
	// ErrInvalidTransition is a Conflict raised by a lifecycle state machine.
	ErrInvalidTransition = fmt.Errorf("invalid transition: %w", ErrConflict)
)

// ErrorKind is the discriminant callers switch on when they need to map a
// failure onto an outer protocol.
type ErrorKind string

const (
	KindNone                ErrorKind = ""
	KindNotFound            ErrorKind = "NOT_FOUND"
	KindConflict            ErrorKind = "CONFLICT"
	KindInvalidArgument     ErrorKind = "INVALID_ARGUMENT"
	KindConcurrencyConflict ErrorKind = "CONCURRENCY_CONFLICT"
	KindFatal               ErrorKind = "FATAL"
	KindCanceled            ErrorKind = "CANCELED"
	KindInternal            ErrorKind = "INTERNAL"
)

// KindOf classifies err. Fatal wins over every other kind because it means
// the enclosing transaction was aborted after a partial write attempt.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrFatal):
		return KindFatal
	case errors.Is(err, ErrConcurrencyConflict):
		return KindConcurrencyConflict
	case errors.Is(err, ErrValidation):
		return KindInvalidArgument
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindInternal
	}
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
