package services

import (
	"errors"

	"toko-admin/internal/repositories"
)

var (
	// ErrUnauthenticated means the caller presented no usable identity.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the store does not exist or belongs to another user.
	ErrForbidden = errors.New("store not found for user")
	// ErrNotFound means the addressed entity does not exist in the store.
	ErrNotFound = repositories.ErrNotFound
)

// ValidationError reports a rejected input field with a message meant for
// the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ErrInUse means the entity is still referenced by others and was kept.
var ErrInUse = repositories.ErrInUse

// ConflictError reports an entity that cannot be removed yet, with a
// message meant for the caller. It matches ErrInUse.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Unwrap() error {
	return ErrInUse
}

func inUse(err error, message string) error {
	if errors.Is(err, ErrInUse) {
		return &ConflictError{Message: message}
	}
	return err
}
