package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/airvoyage/flight-booking-gateway/internal/adapter/http/response"
	"github.com/airvoyage/flight-booking-gateway/internal/domain"
)

// handleValidationError writes a 400 with field details when the error is a
// structured ValidationErrors, or a plain message otherwise.
func handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses. Handlers call it for any
// use case failure after their own specific checks.
func handleError(c echo.Context, err error) error {
	switch {
	case domain.IsSessionExpired(err):
		return response.SessionExpired(c)
	case domain.IsUnauthenticated(err):
		return response.Unauthorized(c)
	case domain.IsBookingNotFound(err):
		return response.NotFound(c, "Booking details not found.")
	case domain.IsOfferNotFound(err):
		return response.NotFound(c, "Flight not found.")
	case domain.IsServiceTimeout(err) || errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case domain.IsServiceUnavailable(err):
		return response.ServiceUnavailable(c)
	case domain.IsInvalidRequest(err):
		return handleValidationError(c, err)
	default:
		return response.InternalServerError(c)
	}
}
