package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the single error kind returned by stores and the statement executor.
// Code follows HTTP status semantics, Fix is an optional hint for the caller.
type AppError struct {
	Code    int
	Message string
	Fix     string
	Err     error
}

// Error returns message with the underlying cause, if any
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrorBody returns the JSON body sent to clients
func (e *AppError) ErrorBody() map[string]string {
	return map[string]string{"cause": e.Message, "Potential Fix": e.Fix}
}

// BadRequest makes a 400 error with a formatted message
func BadRequest(format string, args ...any) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Internal makes a 500 error wrapping err
func Internal(err error, msg string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: msg, Err: err}
}

// WithFix returns a copy of the error carrying a potential fix hint
func (e *AppError) WithFix(fix string) *AppError {
	res := *e
	res.Fix = fix
	return &res
}

// AsAppError extracts *AppError from err. Errors of other kinds are wrapped as 500.
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err, "internal error")
}
