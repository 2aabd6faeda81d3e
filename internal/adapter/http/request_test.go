package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validSearchRequest returns a request that passes validation.
func validSearchRequest() SearchFlightsRequest {
	return SearchFlightsRequest{
		Origin:        "New York",
		Destination:   "London",
		DepartureDate: "2026-09-15",
		ReturnDate:    "2026-09-22",
		Passengers:    2,
		TripType:      "round-trip",
	}
}

func TestSearchFlightsRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SearchFlightsRequest)
		wantField string
	}{
		{
			name:      "missing origin",
			mutate:    func(r *SearchFlightsRequest) { r.Origin = "" },
			wantField: "origin",
		},
		{
			name:      "missing destination",
			mutate:    func(r *SearchFlightsRequest) { r.Destination = "" },
			wantField: "destination",
		},
		{
			name:      "same origin and destination",
			mutate:    func(r *SearchFlightsRequest) { r.Destination = "new york" },
			wantField: "destination",
		},
		{
			name:      "missing departure date",
			mutate:    func(r *SearchFlightsRequest) { r.DepartureDate = "" },
			wantField: "departureDate",
		},
		{
			name:      "malformed departure date",
			mutate:    func(r *SearchFlightsRequest) { r.DepartureDate = "15-09-2026" },
			wantField: "departureDate",
		},
		{
			name:      "impossible departure date",
			mutate:    func(r *SearchFlightsRequest) { r.DepartureDate = "2026-02-30" },
			wantField: "departureDate",
		},
		{
			name:      "round-trip without return date",
			mutate:    func(r *SearchFlightsRequest) { r.ReturnDate = "" },
			wantField: "returnDate",
		},
		{
			name: "return before departure",
			mutate: func(r *SearchFlightsRequest) {
				r.ReturnDate = "2026-09-10"
			},
			wantField: "returnDate",
		},
		{
			name:      "too many passengers",
			mutate:    func(r *SearchFlightsRequest) { r.Passengers = 9 },
			wantField: "passengers",
		},
		{
			name:      "unknown trip type",
			mutate:    func(r *SearchFlightsRequest) { r.TripType = "multi-city" },
			wantField: "tripType",
		},
		{
			name:      "unknown sort option",
			mutate:    func(r *SearchFlightsRequest) { r.SortBy = "cheapest" },
			wantField: "sortBy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSearchRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var vErrs *ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			assert.Contains(t, vErrs.ToMap(), tt.wantField)
		})
	}
}

func TestSearchFlightsRequest_Validate_Valid(t *testing.T) {
	req := validSearchRequest()
	assert.NoError(t, req.Validate())
}

func TestSearchFlightsRequest_Validate_OneWayIgnoresReturnDate(t *testing.T) {
	// A stale return date from a previous round-trip search must not fail a
	// one-way request, even when it is before the departure date.
	req := validSearchRequest()
	req.TripType = "one-way"
	req.ReturnDate = "2026-09-10"

	assert.NoError(t, req.Validate())

	req.ReturnDate = ""
	assert.NoError(t, req.Validate())
}

func TestSearchFlightsRequest_Validate_ZeroPassengersAllowed(t *testing.T) {
	// Zero means "not provided" and defaults to 1 downstream.
	req := validSearchRequest()
	req.Passengers = 0
	assert.NoError(t, req.Validate())
}

func TestSearchFlightsRequest_Validate_Filters(t *testing.T) {
	negPrice := -1.0
	negStops := -1

	req := validSearchRequest()
	req.Filters = &FilterDTO{
		MaxPrice: &negPrice,
		MaxStops: &negStops,
		Airlines: []string{""},
	}

	err := req.Validate()
	require.Error(t, err)

	var vErrs *ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	details := vErrs.ToMap()
	assert.Contains(t, details, "filters.maxPrice")
	assert.Contains(t, details, "filters.maxStops")
	assert.Contains(t, details, "filters.airlines[0]")
}

// validBookingRequest returns a booking request that passes validation.
func validBookingRequest() CreateBookingRequest {
	return CreateBookingRequest{
		FlightID: "7",
		Passengers: []PassengerDTO{
			{
				FirstName:      "Jane",
				LastName:       "Doe",
				DateOfBirth:    "1990-04-12",
				PassportNumber: "P1234567",
				SeatPreference: "economy",
			},
		},
		ContactInfo: ContactInfoDTO{
			Email:            "jane@example.com",
			Phone:            "+1-555-0100",
			EmergencyContact: "John Doe +1-555-0101",
		},
		Payment: PaymentDTO{
			CardNumber:     "4111 1111 1111 1111",
			ExpiryDate:     "09/28",
			CVV:            "123",
			CardholderName: "Jane Doe",
		},
	}
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CreateBookingRequest)
		wantField string
	}{
		{
			name:      "missing flight id",
			mutate:    func(r *CreateBookingRequest) { r.FlightID = "" },
			wantField: "flightId",
		},
		{
			name:      "no passengers",
			mutate:    func(r *CreateBookingRequest) { r.Passengers = nil },
			wantField: "passengers",
		},
		{
			name:      "missing passenger first name",
			mutate:    func(r *CreateBookingRequest) { r.Passengers[0].FirstName = " " },
			wantField: "passengers[0].firstName",
		},
		{
			name:      "bad passenger date of birth",
			mutate:    func(r *CreateBookingRequest) { r.Passengers[0].DateOfBirth = "12/04/1990" },
			wantField: "passengers[0].dateOfBirth",
		},
		{
			name:      "unknown seat preference",
			mutate:    func(r *CreateBookingRequest) { r.Passengers[0].SeatPreference = "first" },
			wantField: "passengers[0].seatPreference",
		},
		{
			name:      "bad contact email",
			mutate:    func(r *CreateBookingRequest) { r.ContactInfo.Email = "not-an-email" },
			wantField: "contactInfo.email",
		},
		{
			name:      "missing emergency contact",
			mutate:    func(r *CreateBookingRequest) { r.ContactInfo.EmergencyContact = "" },
			wantField: "contactInfo.emergencyContact",
		},
		{
			name:      "short card number",
			mutate:    func(r *CreateBookingRequest) { r.Payment.CardNumber = "1234" },
			wantField: "payment.cardNumber",
		},
		{
			name:      "bad expiry format",
			mutate:    func(r *CreateBookingRequest) { r.Payment.ExpiryDate = "13/28" },
			wantField: "payment.expiryDate",
		},
		{
			name:      "bad cvv",
			mutate:    func(r *CreateBookingRequest) { r.Payment.CVV = "12" },
			wantField: "payment.cvv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var vErrs *ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			assert.Contains(t, vErrs.ToMap(), tt.wantField)
		})
	}
}

func TestCreateBookingRequest_Validate_Valid(t *testing.T) {
	req := validBookingRequest()
	assert.NoError(t, req.Validate())
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	// Empty fields are allowed; the form clears what it omits.
	empty := UpdateProfileRequest{}
	assert.NoError(t, empty.Validate())

	bad := UpdateProfileRequest{DateOfBirth: "April 12 1990", Email: "nope"}
	err := bad.Validate()
	require.Error(t, err)

	var vErrs *ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	details := vErrs.ToMap()
	assert.Contains(t, details, "dateOfBirth")
	assert.Contains(t, details, "email")
}

func TestSignInRequest_Validate(t *testing.T) {
	ok := SignInRequest{Email: "jane@example.com", Password: "hunter2hunter2"}
	assert.NoError(t, ok.Validate())

	missing := SignInRequest{}
	err := missing.Validate()
	require.Error(t, err)

	var vErrs *ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	assert.Len(t, vErrs.Errors, 2)
}
