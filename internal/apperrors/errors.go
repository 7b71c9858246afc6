package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates that the caller is not allowed to read the resource.
var ErrForbidden = errors.New("forbidden")

// ErrPartyNotFound indicates that a customer or supplier id did not resolve within the company.
var ErrPartyNotFound = fmt.Errorf("party %w", ErrNotFound)

// ErrInvalidIdentifier indicates a malformed company or party identifier.
var ErrInvalidIdentifier = fmt.Errorf("invalid identifier: %w", ErrValidation)

// ErrRepository wraps any fault raised by a record store while fetching ledger inputs.
var ErrRepository = errors.New("repository error")

// AppError carries an HTTP-ish status code alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
