// Package http provides the HTTP handler layer for the booking gateway API.
package http

import (
	"strings"

	"github.com/airvoyage/flight-booking-gateway/internal/domain"
	"github.com/airvoyage/flight-booking-gateway/internal/usecase"
)

// ToDomainCriteria converts a SearchFlightsRequest to domain.SearchCriteria.
func ToDomainCriteria(req *SearchFlightsRequest) domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		Origin:        strings.TrimSpace(req.Origin),
		Destination:   strings.TrimSpace(req.Destination),
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers:    req.Passengers,
		TripType:      domain.TripType(strings.ToLower(req.TripType)),
	}
	criteria.SetDefaults()

	// A one-way request may carry a stale return date; it is dropped here so
	// downstream code never sees it.
	if criteria.TripType == domain.TripOneWay {
		criteria.ReturnDate = ""
	}
	return criteria
}

// ToDomainFilters converts a FilterDTO to domain.FilterOptions.
func ToDomainFilters(dto *FilterDTO) *domain.FilterOptions {
	if dto == nil {
		return nil
	}
	return &domain.FilterOptions{
		MaxPrice: dto.MaxPrice,
		MaxStops: dto.MaxStops,
		Airlines: dto.Airlines,
	}
}

// ToSearchOptions converts request fields to usecase.SearchOptions.
func ToSearchOptions(req *SearchFlightsRequest) usecase.SearchOptions {
	return usecase.SearchOptions{
		Filters: ToDomainFilters(req.Filters),
		SortBy:  domain.ParseSortOption(req.SortBy),
	}
}

// ToBookingForm converts a validated CreateBookingRequest to the domain
// booking form for the given offer.
func ToBookingForm(req *CreateBookingRequest, offer domain.FlightOffer) (*domain.BookingForm, error) {
	form, err := domain.NewBookingForm(offer, len(req.Passengers))
	if err != nil {
		return nil, err
	}

	passengers := make([]domain.PassengerRecord, len(req.Passengers))
	for i, p := range req.Passengers {
		pref := domain.SeatPreference(strings.ToLower(p.SeatPreference))
		if p.SeatPreference == "" {
			pref = domain.SeatEconomy
		}
		passengers[i] = domain.PassengerRecord{
			FirstName:      strings.TrimSpace(p.FirstName),
			LastName:       strings.TrimSpace(p.LastName),
			DateOfBirth:    p.DateOfBirth,
			PassportNumber: strings.TrimSpace(p.PassportNumber),
			SeatPreference: pref,
		}
	}
	form.Passengers = passengers

	form.Contact = domain.ContactInfo{
		Email:            req.ContactInfo.Email,
		Phone:            req.ContactInfo.Phone,
		EmergencyContact: req.ContactInfo.EmergencyContact,
	}
	form.Payment = domain.PaymentInfo{
		CardNumber:     req.Payment.CardNumber,
		ExpiryDate:     req.Payment.ExpiryDate,
		CVV:            req.Payment.CVV,
		CardholderName: req.Payment.CardholderName,
	}
	return form, nil
}

// ToProfileForm converts an UpdateProfileRequest to the domain profile form.
func ToProfileForm(req *UpdateProfileRequest) domain.ProfileForm {
	return domain.ProfileForm{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		DateOfBirth:    req.DateOfBirth,
		PassportNumber: req.PassportNumber,
	}
}

// domainCredentials converts a SignInRequest to domain.Credentials.
func domainCredentials(req *SignInRequest) domain.Credentials {
	return domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	}
}

// ToSignUpForm converts a SignUpRequest to the usecase sign-up form.
func ToSignUpForm(req *SignUpRequest) usecase.SignUpForm {
	return usecase.SignUpForm{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		AgreeTerms:      req.AgreeTerms,
	}
}
