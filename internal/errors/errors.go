// Package errors provides custom error types for the Din Charya API client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrInvalidResponse = errors.New("invalid response format")
	ErrNoContent       = errors.New("no content in response")
)

// ValidationError represents client-side input validation failure. No
// request is issued when a ValidationError is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Is allows comparison with sentinel errors
func (e *ValidationError) Is(target error) bool {
	if target == ErrEmptyMessage && e.Field == "message" {
		return true
	}
	_, ok := target.(*ValidationError)
	return ok
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// APIError represents a non-2xx response from the backend
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error at %s: %s", e.Endpoint, e.Message)
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// WithBody attaches a response body snippet for diagnostics
func (e *APIError) WithBody(body string) *APIError {
	e.Body = body
	return e
}

// NetworkError represents a transport-level failure (connection refused,
// DNS, broken pipe). The request may never have reached the backend.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("network error at %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(endpoint string, err error) *NetworkError {
	return &NetworkError{Endpoint: endpoint, Err: err}
}

// TimeoutError represents a request timeout
type TimeoutError struct {
	Endpoint string
}

func (e *TimeoutError) Error() string {
	if e.Endpoint == "" {
		return "request timed out"
	}
	return fmt.Sprintf("request to %s timed out", e.Endpoint)
}

// NewTimeoutError creates a new TimeoutError
func NewTimeoutError(endpoint string) *TimeoutError {
	return &TimeoutError{Endpoint: endpoint}
}

// ParseError represents a response parsing error
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError
func NewParseError(message, path string) *ParseError {
	return &ParseError{Message: message, Path: path}
}

// IsValidationError reports whether err is a client-side validation failure
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNetworkError reports whether err is a transport-level failure
func IsNetworkError(err error) bool {
	var n *NetworkError
	return errors.As(err, &n)
}

// IsTimeoutError reports whether err is a request timeout
func IsTimeoutError(err error) bool {
	var t *TimeoutError
	return errors.As(err, &t)
}

// IsAPIError reports whether err is a non-2xx backend response
func IsAPIError(err error) bool {
	var a *APIError
	return errors.As(err, &a)
}

// GetHTTPStatus extracts the HTTP status code from an error, or 0
func GetHTTPStatus(err error) int {
	var a *APIError
	if errors.As(err, &a) {
		return a.StatusCode
	}
	return 0
}

// GetEndpoint extracts the endpoint an error occurred at, or ""
func GetEndpoint(err error) string {
	var a *APIError
	if errors.As(err, &a) {
		return a.Endpoint
	}
	var n *NetworkError
	if errors.As(err, &n) {
		return n.Endpoint
	}
	var t *TimeoutError
	if errors.As(err, &t) {
		return t.Endpoint
	}
	return ""
}

// GetResponseBody extracts the response body snippet from an error, or ""
func GetResponseBody(err error) string {
	var a *APIError
	if errors.As(err, &a) {
		return a.Body
	}
	return ""
}
