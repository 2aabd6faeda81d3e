package domain

// NotAvailable is substituted for any absent field when rendering a booking
// record. The record's shape is not guaranteed complete by the source service,
// so rendering goes through this single substitution rule rather than ad hoc
// per-field fallbacks.
const NotAvailable = "N/A"

// BookingRecord is the server-side booking entity retrieved by reference.
// Fields beyond the core booking payload are optional: the booking service
// may or may not have denormalized flight details onto the record.
type BookingRecord struct {
	// BookingReference is the opaque identifier assigned by the booking service.
	BookingReference string `json:"bookingReference"`

	// FlightID identifies the booked flight.
	FlightID string `json:"flightId"`

	// BookingDate is the RFC 3339 timestamp the booking was created.
	BookingDate string `json:"bookingDate"`

	// TotalPrice is the price paid, fixed at booking time.
	TotalPrice float64 `json:"totalPrice"`

	// Passengers holds the booked passenger records.
	Passengers []PassengerRecord `json:"passengers"`

	// ContactInfo holds the booking's contact details.
	ContactInfo ContactInfo `json:"contactInfo"`

	// Optional denormalized flight details. Nil when absent.
	Origin        *string      `json:"origin,omitempty"`
	Destination   *string      `json:"destination,omitempty"`
	DepartureDate *string      `json:"departureDate,omitempty"`
	Airline       *string      `json:"airline,omitempty"`
	FlightNumber  *string      `json:"flightNumber,omitempty"`
	Departure     *RecordPoint `json:"departure,omitempty"`
	Arrival       *RecordPoint `json:"arrival,omitempty"`
	Duration      *string      `json:"duration,omitempty"`
}

// RecordPoint is the optional departure/arrival detail on a booking record.
// Individual fields may themselves be empty.
type RecordPoint struct {
	Time    string `json:"time,omitempty"`
	Airport string `json:"airport,omitempty"`
	City    string `json:"city,omitempty"`
}

// ConfirmationView is the defensively rendered form of a BookingRecord:
// every optional field has been resolved to either its value or NotAvailable.
type ConfirmationView struct {
	BookingReference string            `json:"bookingReference"`
	BookingDate      string            `json:"bookingDate"`
	TotalPrice       float64           `json:"totalPrice"`
	PassengerCount   int               `json:"passengerCount"`
	Passengers       []PassengerRecord `json:"passengers"`
	ContactInfo      ContactInfo       `json:"contactInfo"`
	Origin           string            `json:"origin"`
	Destination      string            `json:"destination"`
	DepartureDate    string            `json:"departureDate"`
	Airline          string            `json:"airline"`
	FlightNumber     string            `json:"flightNumber"`
	DepartureTime    string            `json:"departureTime"`
	DepartureAirport string            `json:"departureAirport"`
	ArrivalTime      string            `json:"arrivalTime"`
	ArrivalAirport   string            `json:"arrivalAirport"`
	Duration         string            `json:"duration"`
}

// View renders the record with NotAvailable substituted for absent fields.
func (r *BookingRecord) View() ConfirmationView {
	view := ConfirmationView{
		BookingReference: r.BookingReference,
		BookingDate:      r.BookingDate,
		TotalPrice:       r.TotalPrice,
		PassengerCount:   len(r.Passengers),
		Passengers:       r.Passengers,
		ContactInfo:      r.ContactInfo,
		Origin:           orNA(r.Origin),
		Destination:      orNA(r.Destination),
		DepartureDate:    orNA(r.DepartureDate),
		Airline:          orNA(r.Airline),
		FlightNumber:     orNA(r.FlightNumber),
		Duration:         orNA(r.Duration),
		DepartureTime:    NotAvailable,
		DepartureAirport: NotAvailable,
		ArrivalTime:      NotAvailable,
		ArrivalAirport:   NotAvailable,
	}

	if r.Departure != nil {
		view.DepartureTime = orNAString(r.Departure.Time)
		view.DepartureAirport = orNAString(r.Departure.Airport)
	}
	if r.Arrival != nil {
		view.ArrivalTime = orNAString(r.Arrival.Time)
		view.ArrivalAirport = orNAString(r.Arrival.Airport)
	}

	return view
}

// orNA resolves an optional string pointer to its value or NotAvailable.
func orNA(s *string) string {
	if s == nil || *s == "" {
		return NotAvailable
	}
	return *s
}

// orNAString resolves an optional string to itself or NotAvailable.
func orNAString(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
