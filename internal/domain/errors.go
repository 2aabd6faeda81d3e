package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the booking gateway.
// Handlers map these to HTTP status codes; use the Is* helpers to check them.
var (
	// ErrInvalidRequest indicates the caller supplied invalid input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthenticated indicates the operation requires a signed-in session.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrBookingNotFound indicates no booking exists for the given reference.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrOfferNotFound indicates no flight offer exists for the given ID.
	ErrOfferNotFound = errors.New("flight not found")

	// ErrServiceTimeout indicates an upstream service did not respond in time.
	ErrServiceTimeout = errors.New("service timeout")

	// ErrServiceUnavailable indicates an upstream service could not be reached
	// or returned a server-side failure.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrSessionExpired indicates the presented session token is no longer valid.
	ErrSessionExpired = errors.New("session expired")
)

// ServiceError wraps a failure from one of the external collaborators
// (flight listing, booking, users, auth) with the service name attached.
type ServiceError struct {
	// Service is the name of the external service that failed.
	Service string

	// Err is the underlying error.
	Err error

	// Retryable indicates whether the caller may reasonably retry.
	// The gateway never retries automatically; this is advisory for clients.
	Retryable bool
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a non-retryable ServiceError.
func NewServiceError(service string, err error) *ServiceError {
	return &ServiceError{Service: service, Err: err}
}

// NewRetryableServiceError creates a ServiceError marked retryable.
func NewRetryableServiceError(service string, err error) *ServiceError {
	return &ServiceError{Service: service, Err: err, Retryable: true}
}

// NewServiceTimeoutError creates a ServiceError wrapping ErrServiceTimeout.
func NewServiceTimeoutError(service string) *ServiceError {
	return &ServiceError{Service: service, Err: ErrServiceTimeout, Retryable: true}
}

// NewServiceUnavailableError creates a ServiceError wrapping ErrServiceUnavailable.
func NewServiceUnavailableError(service string) *ServiceError {
	return &ServiceError{Service: service, Err: ErrServiceUnavailable, Retryable: true}
}

// ValidationError describes a single field-level validation failure.
type ValidationError struct {
	// Field is the name of the invalid field.
	Field string

	// Message describes why the field is invalid.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest wraps a formatted message with ErrInvalidRequest so that
// errors.Is(err, ErrInvalidRequest) holds.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is (or wraps) ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsUnauthenticated reports whether err is (or wraps) ErrUnauthenticated.
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// IsBookingNotFound reports whether err is (or wraps) ErrBookingNotFound.
func IsBookingNotFound(err error) bool {
	return errors.Is(err, ErrBookingNotFound)
}

// IsOfferNotFound reports whether err is (or wraps) ErrOfferNotFound.
func IsOfferNotFound(err error) bool {
	return errors.Is(err, ErrOfferNotFound)
}

// IsServiceTimeout reports whether err is (or wraps) ErrServiceTimeout.
func IsServiceTimeout(err error) bool {
	return errors.Is(err, ErrServiceTimeout)
}

// IsServiceUnavailable reports whether err is (or wraps) ErrServiceUnavailable.
func IsServiceUnavailable(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}

// IsSessionExpired reports whether err is (or wraps) ErrSessionExpired.
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}
