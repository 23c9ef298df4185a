package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrReferenced indicates that a resource cannot be deleted because other rows still reference it.
var ErrReferenced = errors.New("resource is referenced by other data")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries an HTTP-ish status alongside a wrapped cause. Repositories
// use it to report infrastructure failures without leaking driver types to
// callers.
type AppError struct {
	Status  int
	Message string
	Err     error
}

// NewAppError wraps err with a status and a human-readable message.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
