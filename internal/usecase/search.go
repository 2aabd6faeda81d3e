// Package usecase contains the business logic for the booking gateway's
// page-level flows: flight search, booking, confirmation, profile, and auth.
package usecase

import (
	"context"
	"time"

	"github.com/airvoyage/flight-booking-gateway/internal/domain"
)

// SearchOptions contains optional parameters for a flight search.
type SearchOptions struct {
	// Filters contains optional filtering criteria to apply to results.
	Filters *domain.FilterOptions

	// SortBy specifies how to sort the results (default: price).
	SortBy domain.SortOption
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters: nil,
		SortBy:  domain.SortByPrice,
	}
}

// SearchResult is the outcome of one search: the criteria echoed back, the
// filtered and sorted offers, and how long the listing call took.
type SearchResult struct {
	Criteria     domain.SearchCriteria `json:"criteria"`
	Offers       []domain.FlightOffer  `json:"offers"`
	TotalResults int                   `json:"totalResults"`
	SearchTimeMs int64                 `json:"searchTimeMs"`
}

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search validates the criteria, issues one request to the flight listing
	// service, and returns the offers filtered and sorted per the options.
	Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*SearchResult, error)

	// GetOffer fetches a single offer by ID.
	GetOffer(ctx context.Context, id string) (*domain.FlightOffer, error)
}

// flightSearchUseCase implements FlightSearchUseCase.
type flightSearchUseCase struct {
	flights domain.FlightService
}

// NewFlightSearchUseCase creates a FlightSearchUseCase backed by the given
// flight listing service.
func NewFlightSearchUseCase(flights domain.FlightService) FlightSearchUseCase {
	return &flightSearchUseCase{flights: flights}
}

// Search implements FlightSearchUseCase.Search.
// Each call is handled synchronously within its own request context, so a
// superseded search cannot overwrite a newer one: an abandoned request is
// simply cancelled through ctx.
func (uc *flightSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*SearchResult, error) {
	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	offers, err := uc.flights.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	filtered := applyFilters(offers, opts.Filters)
	sorted := domain.SortOffers(filtered, opts.SortBy)

	return &SearchResult{
		Criteria:     criteria,
		Offers:       sorted,
		TotalResults: len(sorted),
		SearchTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// GetOffer implements FlightSearchUseCase.GetOffer.
func (uc *flightSearchUseCase) GetOffer(ctx context.Context, id string) (*domain.FlightOffer, error) {
	if id == "" {
		return nil, domain.WrapInvalidRequest("offer id is required")
	}
	return uc.flights.GetByID(ctx, id)
}

// applyFilters returns the offers matching all filter criteria.
func applyFilters(offers []domain.FlightOffer, opts *domain.FilterOptions) []domain.FlightOffer {
	if opts == nil {
		return offers
	}

	result := make([]domain.FlightOffer, 0, len(offers))
	for _, o := range offers {
		if opts.MatchesOffer(o) {
			result = append(result, o)
		}
	}
	return result
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
