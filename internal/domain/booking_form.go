package domain

import "fmt"

// PassengerField names an editable field on a PassengerRecord.
type PassengerField string

// Editable passenger fields.
const (
	FieldFirstName      PassengerField = "firstName"
	FieldLastName       PassengerField = "lastName"
	FieldDateOfBirth    PassengerField = "dateOfBirth"
	FieldPassportNumber PassengerField = "passportNumber"
	FieldSeatPreference PassengerField = "seatPreference"
)

// BookingForm aggregates everything the booking flow collects before
// submission: the selected offer, one PassengerRecord per passenger slot,
// contact info, and mock payment info. The slot count is fixed at creation
// from the search criteria's passenger count.
type BookingForm struct {
	// Offer is the flight offer being booked.
	Offer FlightOffer

	// Passengers holds exactly one record per passenger slot.
	Passengers []PassengerRecord

	// Contact holds the booking's contact details.
	Contact ContactInfo

	// Payment holds mock payment details; validated locally, never sent.
	Payment PaymentInfo
}

// NewBookingForm creates a form with the given offer and passenger count.
// Every slot starts empty with the economy seat preference, mirroring how the
// form is first rendered.
func NewBookingForm(offer FlightOffer, passengerCount int) (*BookingForm, error) {
	if passengerCount < MinPassengers || passengerCount > MaxPassengers {
		return nil, fmt.Errorf("%w: passenger count must be between %d and %d, got %d",
			ErrInvalidRequest, MinPassengers, MaxPassengers, passengerCount)
	}

	passengers := make([]PassengerRecord, passengerCount)
	for i := range passengers {
		passengers[i].SeatPreference = SeatEconomy
	}

	return &BookingForm{
		Offer:      offer,
		Passengers: passengers,
	}, nil
}

// SetPassengerField updates a single field of the record at the given index.
// The passengers slice is copied and exactly one entry replaced, leaving all
// other records untouched.
func (f *BookingForm) SetPassengerField(index int, field PassengerField, value string) error {
	if index < 0 || index >= len(f.Passengers) {
		return fmt.Errorf("%w: passenger index %d out of range", ErrInvalidRequest, index)
	}

	updated := make([]PassengerRecord, len(f.Passengers))
	copy(updated, f.Passengers)

	record := updated[index]
	switch field {
	case FieldFirstName:
		record.FirstName = value
	case FieldLastName:
		record.LastName = value
	case FieldDateOfBirth:
		record.DateOfBirth = value
	case FieldPassportNumber:
		record.PassportNumber = value
	case FieldSeatPreference:
		pref := SeatPreference(value)
		if !pref.IsValid() {
			return fmt.Errorf("%w: seatPreference must be one of: economy, premium-economy, business", ErrInvalidRequest)
		}
		record.SeatPreference = pref
	default:
		return fmt.Errorf("%w: unknown passenger field %q", ErrInvalidRequest, field)
	}

	updated[index] = record
	f.Passengers = updated
	return nil
}

// BuildRequest assembles the composite BookingRequest for submission.
// The total price is computed here, once, from the offer's base fare and the
// slot count; it is never recomputed afterwards.
func (f *BookingForm) BuildRequest(userID, bookingDate string) BookingRequest {
	passengers := make([]PassengerRecord, len(f.Passengers))
	copy(passengers, f.Passengers)

	return BookingRequest{
		UserID:      userID,
		FlightID:    f.Offer.ID,
		BookingDate: bookingDate,
		TotalPrice:  TotalPrice(f.Offer.Price, len(f.Passengers)),
		Passengers:  passengers,
		ContactInfo: f.Contact,
	}
}
