package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name       string
		basePrice  float64
		passengers int
		want       float64
	}{
		{
			name:       "spec example",
			basePrice:  299,
			passengers: 2,
			want:       688, // 598 + round(89.7) = 598 + 90
		},
		{
			name:       "single passenger",
			basePrice:  100,
			passengers: 1,
			want:       115,
		},
		{
			name:       "rounding down",
			basePrice:  101,
			passengers: 1,
			want:       116, // 101 + round(15.15) = 101 + 15
		},
		{
			name:       "max passengers",
			basePrice:  450,
			passengers: 8,
			want:       4140, // 3600 + 540
		},
		{
			name:       "zero base price",
			basePrice:  0,
			passengers: 3,
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPrice(tt.basePrice, tt.passengers))
		})
	}
}

func validPassenger() PassengerRecord {
	return PassengerRecord{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		DateOfBirth:    "1985-12-10",
		PassportNumber: "X1234567",
		SeatPreference: SeatEconomy,
	}
}

func TestPassengerRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*PassengerRecord)
		wantErr string
	}{
		{name: "valid", modify: func(p *PassengerRecord) {}},
		{name: "missing first name", modify: func(p *PassengerRecord) { p.FirstName = " " }, wantErr: "firstName"},
		{name: "missing last name", modify: func(p *PassengerRecord) { p.LastName = "" }, wantErr: "lastName"},
		{name: "missing date of birth", modify: func(p *PassengerRecord) { p.DateOfBirth = "" }, wantErr: "dateOfBirth"},
		{name: "malformed date of birth", modify: func(p *PassengerRecord) { p.DateOfBirth = "10/12/1985" }, wantErr: "dateOfBirth"},
		{name: "missing passport", modify: func(p *PassengerRecord) { p.PassportNumber = "" }, wantErr: "passportNumber"},
		{name: "bad seat preference", modify: func(p *PassengerRecord) { p.SeatPreference = "first" }, wantErr: "seatPreference"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPassenger()
			tt.modify(&p)

			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, IsInvalidRequest(err))
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSeatPreference_IsValid(t *testing.T) {
	assert.True(t, SeatEconomy.IsValid())
	assert.True(t, SeatPremiumEconomy.IsValid())
	assert.True(t, SeatBusiness.IsValid())
	assert.False(t, SeatPreference("first").IsValid())
	assert.False(t, SeatPreference("").IsValid())
}

func TestContactInfo_Validate(t *testing.T) {
	valid := ContactInfo{Email: "ada@example.com", Phone: "+1 555 0100", EmergencyContact: "Byron, +1 555 0101"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		modify  func(*ContactInfo)
		wantErr string
	}{
		{name: "missing email", modify: func(c *ContactInfo) { c.Email = "" }, wantErr: "email is required"},
		{name: "invalid email", modify: func(c *ContactInfo) { c.Email = "not-an-address" }, wantErr: "valid address"},
		{name: "missing phone", modify: func(c *ContactInfo) { c.Phone = "" }, wantErr: "phone is required"},
		{name: "missing emergency contact", modify: func(c *ContactInfo) { c.EmergencyContact = "" }, wantErr: "emergency contact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)
			err := c.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPaymentInfo_Validate(t *testing.T) {
	valid := PaymentInfo{
		CardNumber:     "4111 1111 1111 1111",
		ExpiryDate:     "11/27",
		CVV:            "123",
		CardholderName: "Ada Lovelace",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(*PaymentInfo)
	}{
		{name: "short card number", modify: func(p *PaymentInfo) { p.CardNumber = "1234" }},
		{name: "bad expiry month", modify: func(p *PaymentInfo) { p.ExpiryDate = "13/27" }},
		{name: "bad expiry format", modify: func(p *PaymentInfo) { p.ExpiryDate = "2027-11" }},
		{name: "short cvv", modify: func(p *PaymentInfo) { p.CVV = "12" }},
		{name: "missing cardholder", modify: func(p *PaymentInfo) { p.CardholderName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.modify(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestBookingRequest_Validate(t *testing.T) {
	valid := BookingRequest{
		UserID:      "user-1",
		FlightID:    "f1",
		BookingDate: "2026-08-30T10:00:00Z",
		TotalPrice:  688,
		Passengers:  []PassengerRecord{validPassenger()},
		ContactInfo: ContactInfo{Email: "ada@example.com", Phone: "+1 555 0100", EmergencyContact: "Byron"},
	}
	assert.NoError(t, valid.Validate())

	t.Run("missing user is unauthenticated", func(t *testing.T) {
		req := valid
		req.UserID = ""
		assert.True(t, IsUnauthenticated(req.Validate()))
	})

	t.Run("missing flight", func(t *testing.T) {
		req := valid
		req.FlightID = ""
		assert.True(t, IsInvalidRequest(req.Validate()))
	})

	t.Run("no passengers", func(t *testing.T) {
		req := valid
		req.Passengers = nil
		assert.True(t, IsInvalidRequest(req.Validate()))
	})

	t.Run("invalid passenger reports slot number", func(t *testing.T) {
		req := valid
		bad := validPassenger()
		bad.PassportNumber = ""
		req.Passengers = []PassengerRecord{validPassenger(), bad}
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "passenger 2")
	})
}
