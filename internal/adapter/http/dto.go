package http

import (
	"github.com/airvoyage/flight-booking-gateway/internal/domain"
	"github.com/airvoyage/flight-booking-gateway/internal/usecase"
)

// SearchResponseDTO is the data transfer object for search responses.
type SearchResponseDTO struct {
	SearchCriteria SearchCriteriaDTO `json:"searchCriteria"`
	TotalResults   int               `json:"totalResults"`
	SearchTimeMs   int64             `json:"searchTimeMs"`
	Flights        []OfferDTO        `json:"flights"`
}

// SearchCriteriaDTO echoes the effective criteria back in the response.
type SearchCriteriaDTO struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Passengers    int    `json:"passengers"`
	TripType      string `json:"tripType"`
}

// OfferDTO is the data transfer object for one flight offer.
type OfferDTO struct {
	ID           string        `json:"id"`
	Airline      string        `json:"airline"`
	FlightNumber string        `json:"flightNumber"`
	Departure    OfferPointDTO `json:"departure"`
	Arrival      OfferPointDTO `json:"arrival"`
	Duration     string        `json:"duration"`
	Price        float64       `json:"price"`
	Stops        int           `json:"stops"`
	Aircraft     string        `json:"aircraft,omitempty"`
}

// OfferPointDTO represents a departure or arrival point.
type OfferPointDTO struct {
	Time    string `json:"time"`
	Airport string `json:"airport"`
	City    string `json:"city"`
}

// BookingCreatedDTO is the response to a successful booking submission.
type BookingCreatedDTO struct {
	BookingReference string `json:"bookingReference"`
}

// ConfirmationDTO is the response for a booking confirmation lookup.
type ConfirmationDTO struct {
	State   string                   `json:"state"`
	Message string                   `json:"message,omitempty"`
	Booking *domain.ConfirmationView `json:"booking,omitempty"`
}

// UserDTO is the data transfer object for the signed-in user. DisplayName and
// Initials carry the derived presentation fields so clients never re-derive
// the fallback chain.
type UserDTO struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	PassportNumber string `json:"passportNumber,omitempty"`
	Avatar         string `json:"avatar,omitempty"`
	DisplayName    string `json:"displayName"`
	Initials       string `json:"initials"`
}

// SessionDTO is the response to a successful sign-up or sign-in.
type SessionDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ToSearchResponseDTO converts a usecase SearchResult to its response shape.
func ToSearchResponseDTO(result *usecase.SearchResult) *SearchResponseDTO {
	if result == nil {
		return nil
	}

	dto := &SearchResponseDTO{
		SearchCriteria: SearchCriteriaDTO{
			Origin:        result.Criteria.Origin,
			Destination:   result.Criteria.Destination,
			DepartureDate: result.Criteria.DepartureDate,
			ReturnDate:    result.Criteria.ReturnDate,
			Passengers:    result.Criteria.Passengers,
			TripType:      string(result.Criteria.TripType),
		},
		TotalResults: result.TotalResults,
		SearchTimeMs: result.SearchTimeMs,
		Flights:      make([]OfferDTO, len(result.Offers)),
	}

	for i, offer := range result.Offers {
		dto.Flights[i] = ToOfferDTO(&offer)
	}

	return dto
}

// ToOfferDTO converts a domain FlightOffer to an OfferDTO.
func ToOfferDTO(offer *domain.FlightOffer) OfferDTO {
	return OfferDTO{
		ID:           offer.ID,
		Airline:      offer.Airline,
		FlightNumber: offer.FlightNumber,
		Departure: OfferPointDTO{
			Time:    offer.Departure.Time,
			Airport: offer.Departure.Airport,
			City:    offer.Departure.City,
		},
		Arrival: OfferPointDTO{
			Time:    offer.Arrival.Time,
			Airport: offer.Arrival.Airport,
			City:    offer.Arrival.City,
		},
		Duration: offer.Duration,
		Price:    offer.Price,
		Stops:    offer.Stops,
		Aircraft: offer.Aircraft,
	}
}

// ToUserDTO converts a domain User to a UserDTO with derived display fields.
func ToUserDTO(user *domain.User) UserDTO {
	return UserDTO{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Phone:          user.Phone,
		Address:        user.Address,
		DateOfBirth:    user.DateOfBirth,
		PassportNumber: user.PassportNumber,
		Avatar:         user.Avatar,
		DisplayName:    user.DisplayName(),
		Initials:       user.Initials(),
	}
}

// ToConfirmationDTO converts a usecase Confirmation to its response shape.
func ToConfirmationDTO(conf usecase.Confirmation) ConfirmationDTO {
	return ConfirmationDTO{
		State:   string(conf.State),
		Message: conf.Message,
		Booking: conf.View,
	}
}
