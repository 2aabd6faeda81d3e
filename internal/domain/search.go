// Package domain contains the core business entities and rules for the flight
// booking gateway. These entities are independent of the external services that
// back them and form the foundation upon which all other components are built.
package domain

import (
	"fmt"
	"regexp"
	"time"
)

// TripType distinguishes one-way from round-trip searches.
type TripType string

// Supported trip types.
const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

// IsValid checks if the trip type is a known value.
func (t TripType) IsValid() bool {
	return t == TripOneWay || t == TripRoundTrip
}

// Passenger count bounds for a single search.
const (
	MinPassengers = 1
	MaxPassengers = 8
)

// SearchCriteria defines the parameters for a flight search request.
// Once handed to the results fetcher the criteria are treated as immutable.
type SearchCriteria struct {
	// Origin is the departure city or airport entered by the traveller.
	Origin string `json:"origin"`

	// Destination is the arrival city or airport.
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format.
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the return date in YYYY-MM-DD format.
	// Only relevant when TripType is round-trip.
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the number of travellers (1-8).
	Passengers int `json:"passengers"`

	// TripType is one-way or round-trip (default: round-trip).
	TripType TripType `json:"tripType"`
}

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
// A one-way search never requires a return date.
func (s *SearchCriteria) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}

	if s.DepartureDate == "" {
		return fmt.Errorf("%w: departureDate is required", ErrInvalidRequest)
	}
	departure, err := ParseISODate(s.DepartureDate)
	if err != nil {
		return fmt.Errorf("%w: departureDate must be a valid YYYY-MM-DD date, got %q", ErrInvalidRequest, s.DepartureDate)
	}

	if !s.TripType.IsValid() {
		return fmt.Errorf("%w: tripType must be one of: one-way, round-trip; got %q", ErrInvalidRequest, s.TripType)
	}

	// Return date rules apply to round trips only.
	if s.TripType == TripRoundTrip {
		if s.ReturnDate == "" {
			return fmt.Errorf("%w: returnDate is required for round-trip searches", ErrInvalidRequest)
		}
		ret, err := ParseISODate(s.ReturnDate)
		if err != nil {
			return fmt.Errorf("%w: returnDate must be a valid YYYY-MM-DD date, got %q", ErrInvalidRequest, s.ReturnDate)
		}
		if ret.Before(departure) {
			return fmt.Errorf("%w: returnDate must be on or after departureDate", ErrInvalidRequest)
		}
	}

	if s.Passengers < MinPassengers {
		return fmt.Errorf("%w: passengers must be at least %d", ErrInvalidRequest, MinPassengers)
	}
	if s.Passengers > MaxPassengers {
		return fmt.Errorf("%w: passengers cannot exceed %d", ErrInvalidRequest, MaxPassengers)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	if s.Passengers == 0 {
		s.Passengers = 1
	}
	if s.TripType == "" {
		s.TripType = TripRoundTrip
	}
}

// ParseISODate parses a YYYY-MM-DD date string.
func ParseISODate(value string) (time.Time, error) {
	if !dateRegex.MatchString(value) {
		return time.Time{}, fmt.Errorf("not a YYYY-MM-DD date: %q", value)
	}
	return time.Parse("2006-01-02", value)
}
