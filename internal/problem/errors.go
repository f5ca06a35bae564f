package problem

// errors.go defines the infrastructure errors raised at the HTTP boundary
// (malformed bodies, auth failures, middleware rejections).
// Domain and service errors have their own types and are mapped in error_response.go.

import "fmt"

// Error is an HTTP boundary error with a code that determines the response status.
type Error struct {
	// code determines the HTTP status
	code ErrorCode

	// message is returned to the client as the problem detail
	message string

	// wrapped is the optional underlying error, logged but never returned to the client
	wrapped error
}

func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *Error) Code() ErrorCode { return e.code }
func (e *Error) Message() string { return e.message }
func (e *Error) Unwrap() error   { return e.wrapped }

// ErrorCode classifies boundary errors.
type ErrorCode int

const (
	// ErrCodeInternalError is used for unexpected failures
	ErrCodeInternalError ErrorCode = iota + 1

	// ErrCodeMalformedRequest is used when the request body or parameters cannot be parsed
	ErrCodeMalformedRequest

	// ErrCodeUnauthorized is used when the bearer token is missing or invalid
	ErrCodeUnauthorized

	// ErrCodeRequestTooLarge is used when the request body is too large
	// - this is only used in the middleware
	ErrCodeRequestTooLarge

	// ErrCodeRateLimitExceeded is used when the rate limit is exceeded
	// - this is only used in the middleware
	ErrCodeRateLimitExceeded
)

// NewMalformedRequestError creates an error for requests that cannot be parsed.
func NewMalformedRequestError(msg string) error {
	return &Error{code: ErrCodeMalformedRequest, message: msg}
}

// WrapMalformedRequestError wraps a decoding error as a malformed request error.
func WrapMalformedRequestError(err error, msg string) error {
	return &Error{code: ErrCodeMalformedRequest, message: msg, wrapped: err}
}

// NewUnauthorizedError creates an error for a missing bearer token.
func NewUnauthorizedError(msg string) error {
	return &Error{code: ErrCodeUnauthorized, message: msg}
}

// WrapUnauthorizedError wraps a token validation failure. The wrapped error is logged,
// only msg is sent to the client.
func WrapUnauthorizedError(err error, msg string) error {
	return &Error{code: ErrCodeUnauthorized, message: msg, wrapped: err}
}

// NewInternalError creates an internal error for unexpected failures.
func NewInternalError(msg string) error {
	return &Error{code: ErrCodeInternalError, message: msg}
}

// WrapInternalError wraps an unexpected failure.
func WrapInternalError(err error, msg string) error {
	return &Error{code: ErrCodeInternalError, message: msg, wrapped: err}
}

// NewRateLimitError creates a rate limit exceeded error.
func NewRateLimitError(msg string) error {
	return &Error{code: ErrCodeRateLimitExceeded, message: msg}
}

// NewRequestTooLargeError creates a request too large error.
func NewRequestTooLargeError(msg string) error {
	return &Error{code: ErrCodeRequestTooLarge, message: msg}
}
