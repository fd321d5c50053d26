// Package apperrors defines the error taxonomy shared by services and handlers.
package apperrors

import (
	"errors"
	"net/http"
)

// Sentinel kinds. Every *Error unwraps to exactly one of them.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrInternal     = errors.New("internal error")
)

// Error is a classified error with a client-facing message
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

// Is reports whether target is the kind of e
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// Unauthorized reports a missing or invalid identity
func Unauthorized(msg string) error { return &Error{Kind: ErrUnauthorized, Message: msg} }

// Forbidden reports an identity that lacks the required role
func Forbidden(msg string) error { return &Error{Kind: ErrForbidden, Message: msg} }

// NotFound reports a missing user, course, enrollment or record
func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

// Conflict reports a uniqueness violation such as a duplicate enrollment
func Conflict(msg string) error { return &Error{Kind: ErrConflict, Message: msg} }

// Validation reports a malformed or incomplete request
func Validation(msg string) error { return &Error{Kind: ErrValidation, Message: msg} }

// Internal wraps an unexpected failure
func Internal(msg string, err error) error {
	return &Error{Kind: ErrInternal, Message: msg, Err: err}
}

// HTTPStatus maps an error to its HTTP status code; unclassified errors are 500
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message of err.
// Internal and unclassified errors collapse to a generic message.
func Message(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	return err.Error()
}
