package services

import (
	"errors"
	"fmt"
)

// Service errors carry the one user-facing message class per failure
// path. Handlers map them onto HTTP codes and redirect targets;
// anything not in this taxonomy is an internal error and is only
// logged.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrNotAuthorized = errors.New("not authorized")

	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidTransition is returned when a booking status change is
	// attempted from a status it is not reachable from (or the write
	// lost a race to a concurrent transition).
	ErrInvalidTransition = errors.New("booking status change not allowed")
)

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// UploadError wraps a blob-storage failure. Any upload error aborts
// the whole operation; nothing is persisted.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("file upload failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
