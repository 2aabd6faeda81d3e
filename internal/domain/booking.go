package domain

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// SeatPreference is the cabin a passenger asks for.
type SeatPreference string

// Supported seat preferences.
const (
	SeatEconomy        SeatPreference = "economy"
	SeatPremiumEconomy SeatPreference = "premium-economy"
	SeatBusiness       SeatPreference = "business"
)

// IsValid checks if the seat preference is a known value.
func (s SeatPreference) IsValid() bool {
	switch s {
	case SeatEconomy, SeatPremiumEconomy, SeatBusiness:
		return true
	default:
		return false
	}
}

// TaxRate is the flat rate applied to the fare subtotal at booking time.
const TaxRate = 0.15

// TotalPrice computes the final booking price:
//
//	basePrice x passengers + round(basePrice x passengers x TaxRate)
//
// It is computed exactly once at submission and never recomputed after the
// booking is created.
func TotalPrice(basePrice float64, passengers int) float64 {
	subtotal := basePrice * float64(passengers)
	taxes := math.Round(subtotal * TaxRate)
	return subtotal + taxes
}

// PassengerRecord holds the details collected for one passenger slot.
type PassengerRecord struct {
	// FirstName is the passenger's given name.
	FirstName string `json:"firstName"`

	// LastName is the passenger's family name.
	LastName string `json:"lastName"`

	// DateOfBirth is the passenger's date of birth in YYYY-MM-DD format.
	DateOfBirth string `json:"dateOfBirth"`

	// PassportNumber is the passenger's travel document number.
	PassportNumber string `json:"passportNumber"`

	// SeatPreference is the requested cabin (default: economy).
	SeatPreference SeatPreference `json:"seatPreference"`
}

// Validate checks that all required passenger fields are present.
func (p *PassengerRecord) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("%w: passenger firstName is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("%w: passenger lastName is required", ErrInvalidRequest)
	}
	if p.DateOfBirth == "" {
		return fmt.Errorf("%w: passenger dateOfBirth is required", ErrInvalidRequest)
	}
	if _, err := ParseISODate(p.DateOfBirth); err != nil {
		return fmt.Errorf("%w: passenger dateOfBirth must be a valid YYYY-MM-DD date", ErrInvalidRequest)
	}
	if strings.TrimSpace(p.PassportNumber) == "" {
		return fmt.Errorf("%w: passenger passportNumber is required", ErrInvalidRequest)
	}
	if !p.SeatPreference.IsValid() {
		return fmt.Errorf("%w: seatPreference must be one of: economy, premium-economy, business", ErrInvalidRequest)
	}
	return nil
}

// ContactInfo holds the booking's contact details.
type ContactInfo struct {
	// Email is the address booking confirmations are sent to.
	Email string `json:"email"`

	// Phone is the contact phone number.
	Phone string `json:"phone"`

	// EmergencyContact is a free-text name and phone number.
	EmergencyContact string `json:"emergencyContact"`
}

// Validate checks that all contact fields are present.
func (c *ContactInfo) Validate() error {
	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("%w: contact email is required", ErrInvalidRequest)
	}
	if !strings.Contains(c.Email, "@") {
		return fmt.Errorf("%w: contact email must be a valid address", ErrInvalidRequest)
	}
	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: contact phone is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(c.EmergencyContact) == "" {
		return fmt.Errorf("%w: emergency contact is required", ErrInvalidRequest)
	}
	return nil
}

// cardNumberRegex matches 13-19 digits with optional spaces between groups.
var cardNumberRegex = regexp.MustCompile(`^[\d ]{13,23}$`)

// expiryRegex matches card expiry dates in MM/YY format.
var expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

// PaymentInfo holds the mock payment details collected by the booking form.
// It is validated locally and never forwarded to any external service.
type PaymentInfo struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
}

// Validate checks the mock payment fields for plausibility.
func (p *PaymentInfo) Validate() error {
	if !cardNumberRegex.MatchString(p.CardNumber) {
		return fmt.Errorf("%w: cardNumber must be 13-19 digits", ErrInvalidRequest)
	}
	if !expiryRegex.MatchString(p.ExpiryDate) {
		return fmt.Errorf("%w: expiryDate must be in MM/YY format", ErrInvalidRequest)
	}
	if len(p.CVV) < 3 || len(p.CVV) > 4 {
		return fmt.Errorf("%w: cvv must be 3 or 4 digits", ErrInvalidRequest)
	}
	if strings.TrimSpace(p.CardholderName) == "" {
		return fmt.Errorf("%w: cardholderName is required", ErrInvalidRequest)
	}
	return nil
}

// BookingRequest is the composite request sent to the booking service.
// It is constructed once at submission and sent atomically; the service
// assigns the booking reference.
type BookingRequest struct {
	// UserID identifies the authenticated user making the booking.
	UserID string `json:"userId"`

	// FlightID identifies the selected offer.
	FlightID string `json:"flightId"`

	// BookingDate is the RFC 3339 timestamp of submission.
	BookingDate string `json:"bookingDate"`

	// TotalPrice is the final price per the pricing rule (see TotalPrice).
	TotalPrice float64 `json:"totalPrice"`

	// Passengers holds one record per passenger slot.
	Passengers []PassengerRecord `json:"passengers"`

	// ContactInfo holds the booking's contact details.
	ContactInfo ContactInfo `json:"contactInfo"`
}

// Validate checks that the composite request is complete.
func (b *BookingRequest) Validate() error {
	if b.UserID == "" {
		return ErrUnauthenticated
	}
	if b.FlightID == "" {
		return fmt.Errorf("%w: flightId is required", ErrInvalidRequest)
	}
	if len(b.Passengers) < MinPassengers || len(b.Passengers) > MaxPassengers {
		return fmt.Errorf("%w: passenger count must be between %d and %d", ErrInvalidRequest, MinPassengers, MaxPassengers)
	}
	for i := range b.Passengers {
		if err := b.Passengers[i].Validate(); err != nil {
			return fmt.Errorf("passenger %d: %w", i+1, err)
		}
	}
	return b.ContactInfo.Validate()
}
