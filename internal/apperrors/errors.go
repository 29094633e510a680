package apperrors

import (
	"errors"
	"fmt"
)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidInput indicates a request parameter that can never succeed, such as an unknown month name.
var ErrInvalidInput = errors.New("invalid input")

// ErrQueryFailed indicates that the record store rejected or failed a read.
var ErrQueryFailed = errors.New("query failed")

// ErrSeedFetch indicates that the remote seed dataset could not be fetched or decoded.
var ErrSeedFetch = errors.New("seed fetch failed")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
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
