package types

import (
	"errors"
	"fmt"
)

// ErrorKind represents different categories of API errors
type ErrorKind string

const (
	ErrorKindTransport  ErrorKind = "transport"
	ErrorKindAuth       ErrorKind = "auth"
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindNotFound   ErrorKind = "not_found"
	ErrorKindServer     ErrorKind = "server"
)

// APIError represents a normalized error surfaced by a resource service.
// Message is always human readable: the backend's message when one was
// present in the response body, otherwise a per-kind fallback.
type APIError struct {
	Kind       ErrorKind              `json:"kind"`
	StatusCode int                    `json:"status_code,omitempty"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause error
func (e *APIError) Unwrap() error {
	return e.Cause
}

// NewTransportError creates a new transport error (no response received)
func NewTransportError(message string, cause error) *APIError {
	return &APIError{
		Kind:    ErrorKindTransport,
		Message: message,
		Cause:   cause,
	}
}

// NewAuthError creates a new authentication/authorization error
func NewAuthError(statusCode int, message string) *APIError {
	return &APIError{
		Kind:       ErrorKindAuth,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(statusCode int, message string, details map[string]interface{}) *APIError {
	return &APIError{
		Kind:       ErrorKindValidation,
		StatusCode: statusCode,
		Message:    message,
		Details:    details,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *APIError {
	return &APIError{
		Kind:       ErrorKindNotFound,
		StatusCode: 404,
		Message:    message,
	}
}

// NewServerError creates a new server-side error
func NewServerError(statusCode int, message string) *APIError {
	return &APIError{
		Kind:       ErrorKindServer,
		StatusCode: statusCode,
		Message:    message,
	}
}

// IsSessionExpired reports whether err is an auth error (expired or
// invalid session)
func IsSessionExpired(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == ErrorKindAuth
	}
	return false
}

// IsNotFound reports whether err is a not found error
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == ErrorKindNotFound
	}
	return false
}

// Fallback messages used when the backend response carried no message
const (
	MsgTransportFailure = "Unable to reach the server. Please check your connection and try again."
	MsgSessionExpired   = "Your session has expired. Please log in again."
	MsgValidationFailed = "The submitted data was rejected by the server."
	MsgNotFound         = "The requested record was not found."
	MsgServerError      = "Something went wrong on the server. Please try again."
)
