package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/airvoyage/flight-booking-gateway/internal/adapter/http/middleware"
	"github.com/airvoyage/flight-booking-gateway/internal/adapter/http/response"
	"github.com/airvoyage/flight-booking-gateway/internal/usecase"
)

// BookingHandler handles HTTP requests for booking endpoints.
type BookingHandler struct {
	bookings usecase.BookingUseCase
	flights  usecase.FlightSearchUseCase
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookings usecase.BookingUseCase, flights usecase.FlightSearchUseCase) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		flights:  flights,
	}
}

// CreateBooking handles POST /api/v1/bookings
//
// @Summary Create a booking
// @Description Submit a booking for the selected flight offer
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBookingRequest true "Booking details"
// @Success 201 {object} BookingCreatedDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 401 {object} response.ErrorDetail "Authentication required"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/bookings [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req CreateBookingRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	ctx := c.Request().Context()

	// The offer is re-fetched so price and details come from the listing
	// service, not from anything the client sent.
	offer, err := h.flights.GetOffer(ctx, req.FlightID)
	if err != nil {
		return handleError(c, err)
	}

	form, err := ToBookingForm(&req, *offer)
	if err != nil {
		return handleError(c, err)
	}

	reference, err := h.bookings.Submit(ctx, middleware.SessionFromContext(c), form)
	if err != nil {
		return handleError(c, err)
	}

	return response.Created(c, BookingCreatedDTO{BookingReference: reference})
}

// GetConfirmation handles GET /api/v1/bookings/:reference
//
// @Summary Get a booking confirmation
// @Description Fetch a booking by reference and resolve its confirmation state
// @Tags bookings
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} ConfirmationDTO
// @Failure 404 {object} ConfirmationDTO "Booking not found"
// @Router /api/v1/bookings/{reference} [get]
func (h *BookingHandler) GetConfirmation(c echo.Context) error {
	conf := h.bookings.Confirmation(c.Request().Context(), c.Param("reference"))

	// The confirmation state machine always resolves; the status code
	// mirrors the terminal state.
	switch conf.State {
	case usecase.StateSuccess:
		return response.OK(c, ToConfirmationDTO(conf))
	case usecase.StateNotFound:
		return response.JSON(c, http.StatusNotFound, ToConfirmationDTO(conf))
	default:
		if conf.Message == usecase.MsgMissingReference {
			return response.JSON(c, http.StatusBadRequest, ToConfirmationDTO(conf))
		}
		return response.JSON(c, http.StatusBadGateway, ToConfirmationDTO(conf))
	}
}

// ListBookings handles GET /api/v1/bookings
//
// @Summary List the user's bookings
// @Description Fetch all bookings belonging to the signed-in user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.BookingRecord
// @Failure 401 {object} response.ErrorDetail "Authentication required"
// @Router /api/v1/bookings [get]
func (h *BookingHandler) ListBookings(c echo.Context) error {
	records, err := h.bookings.ListForUser(c.Request().Context(), middleware.SessionFromContext(c))
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, records)
}
