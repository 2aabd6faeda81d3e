package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceError(t *testing.T) {
	tests := []struct {
		name           string
		service        string
		underlyingErr  error
		wantContains   []string
		wantUnwrapable bool
		wantRetryable  bool
	}{
		{
			name:           "error message includes service and underlying error",
			service:        "flights",
			underlyingErr:  errors.New("connection failed"),
			wantContains:   []string{"flights", "connection failed"},
			wantUnwrapable: true,
			wantRetryable:  false, // Default is non-retryable
		},
		{
			name:           "error message with different service",
			service:        "bookings",
			underlyingErr:  errors.New("timeout"),
			wantContains:   []string{"bookings", "timeout"},
			wantUnwrapable: true,
			wantRetryable:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewServiceError(tt.service, tt.underlyingErr)

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}

			if tt.wantUnwrapable {
				assert.True(t, errors.Is(err, tt.underlyingErr))
			}

			assert.Equal(t, tt.wantRetryable, err.Retryable)
		})
	}
}

func TestNewRetryableServiceError(t *testing.T) {
	err := NewRetryableServiceError("users", errors.New("temporary network failure"))

	assert.Contains(t, err.Error(), "users")
	assert.True(t, errors.Is(err, err.Err))
	assert.True(t, err.Retryable)
}

func TestNewServiceTimeoutError(t *testing.T) {
	tests := []struct {
		name    string
		service string
	}{
		{name: "flights service", service: "flights"},
		{name: "auth service", service: "auth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewServiceTimeoutError(tt.service)
			assert.Contains(t, err.Error(), tt.service)
			assert.True(t, errors.Is(err, ErrServiceTimeout))
		})
	}
}

func TestNewServiceUnavailableError(t *testing.T) {
	err := NewServiceUnavailableError("bookings")
	assert.Contains(t, err.Error(), "bookings")
	assert.True(t, errors.Is(err, ErrServiceUnavailable))
	assert.True(t, err.Retryable)
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		message   string
		wantError string
	}{
		{
			name:      "origin field validation",
			field:     "origin",
			message:   "origin is required",
			wantError: "origin: origin is required",
		},
		{
			name:      "password field validation",
			field:     "password",
			message:   "must be at least 8 characters",
			wantError: "password: must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)
			assert.Equal(t, tt.wantError, err.Error())
			assert.Equal(t, tt.field, err.Field)
			assert.Equal(t, tt.message, err.Message)
		})
	}
}

func TestWrapInvalidRequest(t *testing.T) {
	tests := []struct {
		name         string
		format       string
		args         []interface{}
		wantContains string
	}{
		{
			name:         "single argument",
			format:       "field %s is required",
			args:         []interface{}{"origin"},
			wantContains: "field origin is required",
		},
		{
			name:         "multiple arguments",
			format:       "%s must be between %d and %d",
			args:         []interface{}{"passengers", 1, 8},
			wantContains: "passengers must be between 1 and 8",
		},
		{
			name:         "no arguments",
			format:       "invalid request format",
			args:         nil,
			wantContains: "invalid request format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapInvalidRequest(tt.format, tt.args...)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
			assert.Contains(t, err.Error(), tt.wantContains)
		})
	}
}

func TestErrorCheckers(t *testing.T) {
	tests := []struct {
		name       string
		checkFunc  func(error) bool
		err        error
		wantResult bool
	}{
		{
			name:       "IsInvalidRequest with ErrInvalidRequest",
			checkFunc:  IsInvalidRequest,
			err:        ErrInvalidRequest,
			wantResult: true,
		},
		{
			name:       "IsInvalidRequest with wrapped error",
			checkFunc:  IsInvalidRequest,
			err:        WrapInvalidRequest("test"),
			wantResult: true,
		},
		{
			name:       "IsInvalidRequest with different error",
			checkFunc:  IsInvalidRequest,
			err:        ErrBookingNotFound,
			wantResult: false,
		},
		{
			name:       "IsUnauthenticated with ErrUnauthenticated",
			checkFunc:  IsUnauthenticated,
			err:        ErrUnauthenticated,
			wantResult: true,
		},
		{
			name:       "IsBookingNotFound with ErrBookingNotFound",
			checkFunc:  IsBookingNotFound,
			err:        ErrBookingNotFound,
			wantResult: true,
		},
		{
			name:       "IsOfferNotFound with wrapped ErrOfferNotFound",
			checkFunc:  IsOfferNotFound,
			err:        fmt.Errorf("%w: id %q", ErrOfferNotFound, "42"),
			wantResult: true,
		},
		{
			name:       "IsServiceTimeout with wrapped timeout error",
			checkFunc:  IsServiceTimeout,
			err:        NewServiceTimeoutError("flights"),
			wantResult: true,
		},
		{
			name:       "IsServiceUnavailable with wrapped unavailable error",
			checkFunc:  IsServiceUnavailable,
			err:        NewServiceUnavailableError("flights"),
			wantResult: true,
		},
		{
			name:       "IsSessionExpired with different error",
			checkFunc:  IsSessionExpired,
			err:        ErrUnauthenticated,
			wantResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantResult, tt.checkFunc(tt.err))
		})
	}
}
