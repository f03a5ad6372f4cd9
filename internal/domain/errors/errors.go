package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches on the error code so that copies made by WithDetails still
// satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrValidationRejected is returned when a selection is not part of the
	// latest option set of its level.
	ErrValidationRejected = NewBaseError(
		http.StatusUnprocessableEntity,
		"SELECTION_REJECTED",
		"selection is not among the current options",
		"",
	)

	// ErrUnsupportedOperation marks write paths the remote service does not expose.
	ErrUnsupportedOperation = NewBaseError(
		http.StatusNotImplemented,
		"UNSUPPORTED_OPERATION",
		"operation is not supported by the remote service",
		"",
	)

	ErrNeedsReauth = NewBaseError(
		http.StatusUnauthorized,
		"NEEDS_REAUTH",
		"session is missing or expired, re-authentication required",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account is not set up",
		"",
	)

	ErrAccountExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_EXISTS",
		"account is already set up",
		"",
	)

	ErrUnknownLevel = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_LEVEL",
		"unknown selection level",
		"",
	)
)

// AuthError signals that the remote service no longer accepts the session
// or refused a login attempt.
type AuthError struct {
	Status int
	Detail string
}

// NewAuthError creates an AuthError for the given status and diagnostic detail.
func NewAuthError(status int, detail string) *AuthError {
	return &AuthError{Status: status, Detail: detail}
}

func (e *AuthError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("authentication failed: status %d", e.Status)
	}

	return fmt.Sprintf("authentication failed: status %d: %s", e.Status, e.Detail)
}

// HTTPCode returns the HTTP status code
func (e *AuthError) HTTPCode() int { return http.StatusUnauthorized }

// ErrorCode returns the business error code
func (e *AuthError) ErrorCode() string { return "AUTH_FAILED" }

// Message returns the user-friendly error message
func (e *AuthError) Message() string { return "remote service rejected the session" }

// Details returns detailed error information
func (e *AuthError) Details() string { return e.Error() }

// HTTPError is a non-2xx, non-auth response or a transport failure (Status 0).
type HTTPError struct {
	Status int
	Path   string
	Reason string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(status int, path, reason string) *HTTPError {
	return &HTTPError{Status: status, Path: path, Reason: reason}
}

func (e *HTTPError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("request %s failed: %s", e.Path, e.Reason)
	}

	return fmt.Sprintf("request %s failed: status %d: %s", e.Path, e.Status, e.Reason)
}

// HTTPCode returns the HTTP status code
func (e *HTTPError) HTTPCode() int { return http.StatusBadGateway }

// ErrorCode returns the business error code
func (e *HTTPError) ErrorCode() string { return "UPSTREAM_ERROR" }

// Message returns the user-friendly error message
func (e *HTTPError) Message() string { return "remote service request failed" }

// Details returns detailed error information
func (e *HTTPError) Details() string { return e.Error() }

// DecodeError is a 2xx response whose body could not be decoded.
// It is handled like an HTTPError by the refresh loop.
type DecodeError struct {
	Path string
	Err  error
}

// NewDecodeError creates a DecodeError.
func NewDecodeError(path string, err error) *DecodeError {
	return &DecodeError{Path: path, Err: err}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// HTTPCode returns the HTTP status code
func (e *DecodeError) HTTPCode() int { return http.StatusBadGateway }

// ErrorCode returns the business error code
func (e *DecodeError) ErrorCode() string { return "DECODE_FAILED" }

// Message returns the user-friendly error message
func (e *DecodeError) Message() string { return "remote service returned a malformed body" }

// Details returns detailed error information
func (e *DecodeError) Details() string { return e.Error() }

// IsAuth reports whether err carries an AuthError anywhere in its chain.
func IsAuth(err error) bool {
	var authErr *AuthError

	return errors.As(err, &authErr)
}
