// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate
// proper documentation with examples.
package http

// SwaggerSearchResponse represents the search API response for swagger documentation.
// @Description Flight search results with the effective criteria echoed back
type SwaggerSearchResponse struct {
	// SearchCriteria is the effective criteria after defaults were applied
	SearchCriteria SwaggerSearchCriteria `json:"searchCriteria"`

	// TotalResults is the number of offers after filtering
	TotalResults int `json:"totalResults" example:"12"`

	// SearchTimeMs is how long the listing call took in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs" example:"240"`

	// Flights contains the offers after filtering and sorting
	Flights []SwaggerOffer `json:"flights"`
}

// SwaggerSearchCriteria echoes the search criteria in the response.
// @Description The effective search criteria
type SwaggerSearchCriteria struct {
	Origin        string `json:"origin" example:"New York"`
	Destination   string `json:"destination" example:"London"`
	DepartureDate string `json:"departureDate" example:"2026-09-15"`
	ReturnDate    string `json:"returnDate,omitempty" example:"2026-09-22"`
	Passengers    int    `json:"passengers" example:"2"`
	TripType      string `json:"tripType" example:"round-trip"`
}

// SwaggerOffer represents a single flight offer.
// @Description One bookable flight offer
type SwaggerOffer struct {
	// ID is the listing service's identifier for this offer
	ID string `json:"id" example:"1"`

	// Airline is the operating airline's display name
	Airline string `json:"airline" example:"SkyWings"`

	// FlightNumber is the airline's flight number
	FlightNumber string `json:"flightNumber" example:"SW-101"`

	// Departure contains the departure point
	Departure SwaggerOfferPoint `json:"departure"`

	// Arrival contains the arrival point
	Arrival SwaggerOfferPoint `json:"arrival"`

	// Duration is the human-readable duration label
	Duration string `json:"duration" example:"7h 30m"`

	// Price is the base fare per passenger
	Price float64 `json:"price" example:"450"`

	// Stops is the number of intermediate stops
	Stops int `json:"stops" example:"0"`

	// Aircraft is the equipment type when known
	Aircraft string `json:"aircraft,omitempty" example:"Boeing 777"`
}

// SwaggerOfferPoint represents a departure or arrival point.
// @Description A departure or arrival point
type SwaggerOfferPoint struct {
	Time    string `json:"time" example:"08:45"`
	Airport string `json:"airport" example:"JFK"`
	City    string `json:"city" example:"New York"`
}

// SwaggerBookingCreated represents the booking creation response.
// @Description The reference assigned to a new booking
type SwaggerBookingCreated struct {
	BookingReference string `json:"bookingReference" example:"BK-2026-001"`
}

// SwaggerConfirmation represents a confirmation lookup response.
// @Description The resolved confirmation state for a booking reference
type SwaggerConfirmation struct {
	// State is one of: success, not-found, error
	State string `json:"state" example:"success"`

	// Message is the user-facing message for non-success states
	Message string `json:"message,omitempty" example:"Booking details not found."`
}

// SwaggerUser represents the signed-in user.
// @Description The user's profile with derived display fields
type SwaggerUser struct {
	ID          string `json:"id" example:"user-1"`
	Email       string `json:"email" example:"jane@example.com"`
	FirstName   string `json:"firstName,omitempty" example:"Jane"`
	LastName    string `json:"lastName,omitempty" example:"Doe"`
	DisplayName string `json:"displayName" example:"Jane Doe"`
	Initials    string `json:"initials" example:"JD"`
}

// SwaggerSession represents the sign-up and sign-in response.
// @Description A started session: the bearer token plus the user
type SwaggerSession struct {
	Token string      `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."`
	User  SwaggerUser `json:"user"`
}

// SwaggerErrorDetail represents an API error.
// @Description Structured error information
type SwaggerErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific messages for validation errors
	Details map[string]string `json:"details,omitempty"`
}
