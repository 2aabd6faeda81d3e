// Package http provides the HTTP handler layer for the booking gateway API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/airvoyage/flight-booking-gateway/internal/infrastructure/timeutil"
)

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is the departure city or airport (e.g., "New York")
	Origin string `json:"origin"`

	// Destination is the arrival city or airport (e.g., "London")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the return date in YYYY-MM-DD format (round-trip only)
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the number of travellers (1-8, default 1)
	Passengers int `json:"passengers,omitempty"`

	// TripType is "one-way" or "round-trip" (default round-trip)
	TripType string `json:"tripType,omitempty"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy specifies how to sort results: price, duration, departure
	SortBy string `json:"sortBy,omitempty"`
}

// FilterDTO represents optional filters for flight search.
// Example: {"maxPrice": 500, "maxStops": 0, "airlines": ["SkyWings"]}
type FilterDTO struct {
	// MaxPrice excludes offers priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"500"`

	// MaxStops excludes offers with more stops than this value (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty" example:"0"`

	// Airlines restricts results to these airline names
	Airlines []string `json:"airlines,omitempty" example:"SkyWings,AtlanticAir"`
}

// Validation regex patterns.
var (
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Valid trip types.
var validTripTypes = map[string]bool{
	"one-way":    true,
	"round-trip": true,
	"":           true, // Empty is valid (defaults to round-trip)
}

// Valid sort options.
var validSortOptions = map[string]bool{
	"price":     true,
	"duration":  true,
	"departure": true,
	"":          true, // Empty is valid (defaults to price)
}

// Valid seat preferences.
var validSeatPreferences = map[string]bool{
	"economy":         true,
	"premium-economy": true,
	"business":        true,
	"":                true, // Empty is valid (defaults to economy)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Origin) == "" {
		errs.Add("origin", "origin is required")
	}
	if strings.TrimSpace(r.Destination) == "" {
		errs.Add("destination", "destination is required")
	}
	if r.Origin != "" && strings.EqualFold(strings.TrimSpace(r.Origin), strings.TrimSpace(r.Destination)) {
		errs.Add("destination", "origin and destination must be different")
	}

	r.validateDates(errs)

	if r.Passengers < 0 || r.Passengers > 8 {
		errs.Add("passengers", "passengers must be between 1 and 8")
	}
	if !validTripTypes[strings.ToLower(r.TripType)] {
		errs.Add("tripType", "tripType must be one of: one-way, round-trip")
	}
	if !validSortOptions[strings.ToLower(r.SortBy)] {
		errs.Add("sortBy", "sortBy must be one of: price, duration, departure")
	}

	r.validateFilters(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchFlightsRequest) validateDates(errs *ValidationErrors) {
	departure, ok := requireDate(errs, "departureDate", r.DepartureDate)

	// Return date rules apply to round trips only; a one-way request may
	// carry a stale returnDate and it is simply ignored.
	if strings.ToLower(r.TripType) == "one-way" {
		return
	}

	if r.ReturnDate == "" {
		errs.Add("returnDate", "returnDate is required for round-trip searches")
		return
	}
	ret, retOK := timeutil.ParseDate(r.ReturnDate)
	if !retOK {
		errs.Add("returnDate", "returnDate must be a valid date in YYYY-MM-DD format")
		return
	}
	if ok && ret.Before(departure) {
		errs.Add("returnDate", "returnDate must be on or after departureDate")
	}
}

func (r *SearchFlightsRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	if r.Filters.MaxPrice != nil && *r.Filters.MaxPrice < 0 {
		errs.Add("filters.maxPrice", "maxPrice must be a positive number")
	}
	if r.Filters.MaxStops != nil && *r.Filters.MaxStops < 0 {
		errs.Add("filters.maxStops", "maxStops must be a non-negative number")
	}
	for i, airline := range r.Filters.Airlines {
		if strings.TrimSpace(airline) == "" {
			errs.Add(fmt.Sprintf("filters.airlines[%d]", i), "airline name cannot be empty")
		}
	}
}

// requireDate validates a required YYYY-MM-DD field and records errors.
func requireDate(errs *ValidationErrors, field, value string) (time.Time, bool) {
	if value == "" {
		errs.Add(field, field+" is required")
		return time.Time{}, false
	}
	t, ok := timeutil.ParseDate(value)
	if !ok {
		errs.Add(field, field+" must be a valid date in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return t, true
}

// PassengerDTO represents one passenger in a booking request.
type PassengerDTO struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DateOfBirth    string `json:"dateOfBirth"`
	PassportNumber string `json:"passportNumber"`
	SeatPreference string `json:"seatPreference,omitempty"`
}

// ContactInfoDTO represents the booking contact details.
type ContactInfoDTO struct {
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	EmergencyContact string `json:"emergencyContact"`
}

// PaymentDTO represents the payment form. It is validated and discarded; no
// payment detail leaves the gateway.
type PaymentDTO struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
}

// CreateBookingRequest represents the request body for creating a booking.
type CreateBookingRequest struct {
	// FlightID identifies the offer being booked
	FlightID string `json:"flightId"`

	// Passengers holds one entry per traveller (1-8)
	Passengers []PassengerDTO `json:"passengers"`

	// ContactInfo holds the booking's contact details
	ContactInfo ContactInfoDTO `json:"contactInfo"`

	// Payment holds the payment form
	Payment PaymentDTO `json:"payment"`
}

// Validate validates the booking request and returns any validation errors.
func (r *CreateBookingRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.FlightID == "" {
		errs.Add("flightId", "flightId is required")
	}
	if len(r.Passengers) < 1 || len(r.Passengers) > 8 {
		errs.Add("passengers", "passengers must contain between 1 and 8 entries")
	}

	for i, p := range r.Passengers {
		prefix := fmt.Sprintf("passengers[%d].", i)
		if strings.TrimSpace(p.FirstName) == "" {
			errs.Add(prefix+"firstName", "firstName is required")
		}
		if strings.TrimSpace(p.LastName) == "" {
			errs.Add(prefix+"lastName", "lastName is required")
		}
		if _, ok := timeutil.ParseDate(p.DateOfBirth); !ok {
			errs.Add(prefix+"dateOfBirth", "dateOfBirth must be a valid date in YYYY-MM-DD format")
		}
		if strings.TrimSpace(p.PassportNumber) == "" {
			errs.Add(prefix+"passportNumber", "passportNumber is required")
		}
		if !validSeatPreferences[strings.ToLower(p.SeatPreference)] {
			errs.Add(prefix+"seatPreference", "seatPreference must be one of: economy, premium-economy, business")
		}
	}

	r.validateContact(errs)
	r.validatePayment(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *CreateBookingRequest) validateContact(errs *ValidationErrors) {
	if r.ContactInfo.Email == "" {
		errs.Add("contactInfo.email", "email is required")
	} else if !emailPattern.MatchString(r.ContactInfo.Email) {
		errs.Add("contactInfo.email", "email must be a valid address")
	}
	if strings.TrimSpace(r.ContactInfo.Phone) == "" {
		errs.Add("contactInfo.phone", "phone is required")
	}
	if strings.TrimSpace(r.ContactInfo.EmergencyContact) == "" {
		errs.Add("contactInfo.emergencyContact", "emergencyContact is required")
	}
}

func (r *CreateBookingRequest) validatePayment(errs *ValidationErrors) {
	digits := strings.ReplaceAll(r.Payment.CardNumber, " ", "")
	if len(digits) < 13 || len(digits) > 19 {
		errs.Add("payment.cardNumber", "cardNumber must be 13-19 digits")
	}
	if !expiryPattern.MatchString(r.Payment.ExpiryDate) {
		errs.Add("payment.expiryDate", "expiryDate must be in MM/YY format")
	}
	if len(r.Payment.CVV) < 3 || len(r.Payment.CVV) > 4 {
		errs.Add("payment.cvv", "cvv must be 3 or 4 digits")
	}
	if strings.TrimSpace(r.Payment.CardholderName) == "" {
		errs.Add("payment.cardholderName", "cardholderName is required")
	}
}

// UpdateProfileRequest represents the request body for a profile save. The
// whole form travels on every save; omitted fields are cleared, not kept.
type UpdateProfileRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	DateOfBirth    string `json:"dateOfBirth"`
	PassportNumber string `json:"passportNumber"`
}

// Validate validates the profile request and returns any validation errors.
func (r *UpdateProfileRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.DateOfBirth != "" {
		if _, ok := timeutil.ParseDate(r.DateOfBirth); !ok {
			errs.Add("dateOfBirth", "dateOfBirth must be a valid date in YYYY-MM-DD format")
		}
	}
	if r.Email != "" && !emailPattern.MatchString(r.Email) {
		errs.Add("email", "email must be a valid address")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// SignUpRequest represents the request body for registration.
type SignUpRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AgreeTerms      bool   `json:"agreeTerms"`
}

// SignInRequest represents the request body for sign-in.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the sign-in request and returns any validation errors.
func (r *SignInRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Email == "" {
		errs.Add("email", "email is required")
	}
	if r.Password == "" {
		errs.Add("password", "password is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
