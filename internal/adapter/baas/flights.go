package baas

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/airvoyage/flight-booking-gateway/internal/domain"
)

// FlightsServiceName identifies the flight listing service in errors and logs.
const FlightsServiceName = "flights"

// flightDTO is the listing service's wire shape for one flight. The service
// uses snake_case city and time fields; everything else is camelCase.
type flightDTO struct {
	ID            string  `json:"id"`
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flightNumber"`
	DepartureCity string  `json:"departure_city"`
	ArrivalCity   string  `json:"arrival_city"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	DepartureCode string  `json:"departureAirport"`
	ArrivalCode   string  `json:"arrivalAirport"`
	Duration      string  `json:"duration"`
	Price         float64 `json:"price"`
	Stops         int     `json:"stops"`
	Aircraft      string  `json:"aircraft"`
}

// FlightsClient implements domain.FlightService against the listing service.
type FlightsClient struct {
	*Client
}

// NewFlightsClient creates a FlightsClient rooted at baseURL.
func NewFlightsClient(baseURL string, httpc *http.Client) *FlightsClient {
	return &FlightsClient{Client: NewClient(FlightsServiceName, baseURL, httpc)}
}

// Search implements domain.FlightService.Search. The service takes the
// search criteria as snake_case query parameters; passenger count and trip
// type are applied gateway-side, not by the listing service.
func (c *FlightsClient) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.FlightOffer, error) {
	query := url.Values{}
	query.Set("departure_city", criteria.Origin)
	query.Set("arrival_city", criteria.Destination)
	query.Set("departure_time", criteria.DepartureDate)

	var dtos []flightDTO
	if err := c.get(ctx, "/flights", query, &dtos); err != nil {
		return nil, err
	}
	return normalizeOffers(dtos), nil
}

// GetByID implements domain.FlightService.GetByID.
// A 404 from the service maps to domain.ErrOfferNotFound.
func (c *FlightsClient) GetByID(ctx context.Context, id string) (*domain.FlightOffer, error) {
	var dto flightDTO
	if err := c.get(ctx, "/flights/"+url.PathEscape(id), nil, &dto); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: id %q", domain.ErrOfferNotFound, id)
		}
		return nil, err
	}
	offer := normalizeOffer(dto)
	return &offer, nil
}

// normalizeOffers converts the wire flights to domain offers.
func normalizeOffers(dtos []flightDTO) []domain.FlightOffer {
	offers := make([]domain.FlightOffer, 0, len(dtos))
	for _, dto := range dtos {
		offers = append(offers, normalizeOffer(dto))
	}
	return offers
}

// normalizeOffer converts one wire flight to a domain offer.
func normalizeOffer(dto flightDTO) domain.FlightOffer {
	return domain.FlightOffer{
		ID:           dto.ID,
		Airline:      dto.Airline,
		FlightNumber: dto.FlightNumber,
		Departure: domain.OfferPoint{
			Time:    dto.DepartureTime,
			Airport: dto.DepartureCode,
			City:    dto.DepartureCity,
		},
		Arrival: domain.OfferPoint{
			Time:    dto.ArrivalTime,
			Airport: dto.ArrivalCode,
			City:    dto.ArrivalCity,
		},
		Duration: dto.Duration,
		Price:    dto.Price,
		Stops:    dto.Stops,
		Aircraft: dto.Aircraft,
	}
}

// Ensure FlightsClient implements domain.FlightService at compile time.
var _ domain.FlightService = (*FlightsClient)(nil)
