package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeBackend    = "BACKEND_ERROR"
	CodeBusy       = "BUSY"
	CodeConfig     = "CONFIG_ERROR"
)

type Error struct {
	Message    string
	Code       string
	StatusCode int
	Field      string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

func New(message, code string, statusCode int) *Error {
	return &Error{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
	}
}

func NewValidation(message, field string) *Error {
	return &Error{
		Message:    message,
		Code:       CodeValidation,
		StatusCode: http.StatusBadRequest,
		Field:      field,
	}
}

func NewNotFound(message string) *Error {
	return New(message, CodeNotFound, http.StatusNotFound)
}

// NewBackend reports a failure of an external collaborator (database, SMTP).
func NewBackend(message string, cause error) *Error {
	return New(message, CodeBackend, http.StatusBadGateway).WithCause(cause)
}

func NewConfig(message string) *Error {
	return New(message, CodeConfig, http.StatusInternalServerError)
}

// Status returns the HTTP status carried by err, or 500 when err is not an *Error.
func Status(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.StatusCode != 0 {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}

// FieldOf returns the offending field of a validation error, if any.
func FieldOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
