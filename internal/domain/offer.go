package domain

// FlightOffer represents a single priced, bookable flight option returned by a
// search. Offers are read-only: they are sourced from the flight listing
// service per search and never mutated locally.
type FlightOffer struct {
	// ID is the listing service's identifier for this offer.
	ID string `json:"id"`

	// Airline is the operating airline's display name.
	Airline string `json:"airline"`

	// FlightNumber is the airline's flight number (e.g., "AV-123").
	FlightNumber string `json:"flightNumber"`

	// Departure describes the departure point.
	Departure OfferPoint `json:"departure"`

	// Arrival describes the arrival point.
	Arrival OfferPoint `json:"arrival"`

	// Duration is the human-readable duration label (e.g., "5h 30m").
	Duration string `json:"duration"`

	// Price is the base fare per passenger.
	Price float64 `json:"price"`

	// Stops is the number of stops (0 = direct flight).
	Stops int `json:"stops"`

	// Aircraft is the aircraft type (e.g., "Boeing 737-800").
	Aircraft string `json:"aircraft,omitempty"`
}

// OfferPoint represents the departure or arrival side of an offer.
// Time is a display string in 24h HH:MM form so it sorts lexically.
type OfferPoint struct {
	// Time is the scheduled local time (e.g., "08:45").
	Time string `json:"time"`

	// Airport is the airport code or name.
	Airport string `json:"airport"`

	// City is the city served by the airport.
	City string `json:"city"`
}
