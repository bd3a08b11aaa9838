// Package domain contains the core business logic and entities.
// This package has no external dependencies (only stdlib).
package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an entity id or slug does not resolve.
var ErrNotFound = errors.New("not found")

// ValidationError reports invalid caller input (missing required field,
// invalid enum value, out-of-range number). Never retried automatically.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConflictError reports a uniqueness conflict, in practice always a slug
// that is already taken within a collection. The repository layer also
// converts store-level unique constraint violations into this type, so the
// database index remains the final arbiter of slug uniqueness.
type ConflictError struct {
	Slug string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slug %q already exists", e.Slug)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
