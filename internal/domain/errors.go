package domain

import "errors"

// Core failure taxonomy. Services return these as values; the HTTP layer maps
// them to status codes. "Invalid token" deliberately covers expired, malformed
// and subject-not-found alike, and "invalid credentials" covers both unknown
// email and wrong password, so callers cannot enumerate accounts.
var (
	ErrMissingToken       = errors.New("authentication token is missing")
	ErrInvalidToken       = errors.New("invalid authentication token")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource already exists")
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
