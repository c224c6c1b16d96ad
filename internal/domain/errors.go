package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
)

// Favorites-specific errors. Each wraps one of the generic classes above so
// the transport layer can map them by class with errors.Is.
var (
	// ErrIdentity means the caller carries no resolvable email claim.
	ErrIdentity = fmt.Errorf("no resolvable identity: %w", ErrUnauthorized)
	// ErrInvalidReference means a category id does not belong to the caller.
	ErrInvalidReference = fmt.Errorf("category not found or not owned by user: %w", ErrValidation)
	// ErrDuplicateFavorite means the (user, kind, external id) triple already exists.
	ErrDuplicateFavorite = fmt.Errorf("item is already in favorites: %w", ErrAlreadyExists)
	// ErrDuplicateCategory means the user already has a category with that name.
	ErrDuplicateCategory = fmt.Errorf("category with this name already exists: %w", ErrAlreadyExists)
)

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
