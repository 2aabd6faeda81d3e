package http

import (
	"github.com/labstack/echo/v4"

	"github.com/airvoyage/flight-booking-gateway/internal/adapter/http/response"
	"github.com/airvoyage/flight-booking-gateway/internal/usecase"
)

// FlightHandler handles HTTP requests for flight search endpoints.
type FlightHandler struct {
	useCase usecase.FlightSearchUseCase
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightSearchUseCase) *FlightHandler {
	return &FlightHandler{
		useCase: uc,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search available flights for the given route and dates
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req)
	opts := ToSearchOptions(&req)

	result, err := h.useCase.Search(c.Request().Context(), criteria, opts)
	if err != nil {
		return handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// GetFlight handles GET /api/v1/flights/:id
//
// @Summary Get one flight offer
// @Description Fetch a single flight offer by its listing identifier
// @Tags flights
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} OfferDTO
// @Failure 404 {object} response.ErrorDetail "Offer not found"
// @Router /api/v1/flights/{id} [get]
func (h *FlightHandler) GetFlight(c echo.Context) error {
	offer, err := h.useCase.GetOffer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, ToOfferDTO(offer))
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}
