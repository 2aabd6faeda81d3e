package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/airvoyage/flight-booking-gateway/internal/domain"
)

// createTestOffer creates an offer for testing with the given parameters.
func createTestOffer(id, airline string, price float64, stops int) domain.FlightOffer {
	return domain.FlightOffer{
		ID:           id,
		Airline:      airline,
		FlightNumber: "AV-" + id,
		Departure: domain.OfferPoint{
			Time:    "08:45",
			Airport: "JFK",
			City:    "New York",
		},
		Arrival: domain.OfferPoint{
			Time:    "14:15",
			Airport: "LHR",
			City:    "London",
		},
		Duration: "5h 30m",
		Price:    price,
		Stops:    stops,
	}
}

// validTestCriteria returns criteria that pass validation.
func validTestCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "New York",
		Destination:   "London",
		DepartureDate: "2026-09-15",
		ReturnDate:    "2026-09-22",
		Passengers:    2,
		TripType:      domain.TripRoundTrip,
	}
}

func TestFlightSearchUseCase_Search_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	offers := []domain.FlightOffer{
		createTestOffer("1", "SkyWings", 450, 0),
		createTestOffer("2", "AtlanticAir", 299, 1),
		createTestOffer("3", "SkyWings", 380, 0),
	}

	mockFlights := domain.NewMockFlightService(ctrl)
	mockFlights.EXPECT().Search(gomock.Any(), gomock.Any()).Return(offers, nil)

	uc := NewFlightSearchUseCase(mockFlights)
	result, err := uc.Search(context.Background(), validTestCriteria(), DefaultSearchOptions())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 3, result.TotalResults)
	// Default sort is ascending price.
	assert.Equal(t, "2", result.Offers[0].ID)
	assert.Equal(t, "3", result.Offers[1].ID)
	assert.Equal(t, "1", result.Offers[2].ID)
	assert.GreaterOrEqual(t, result.SearchTimeMs, int64(0))
}

func TestFlightSearchUseCase_Search_InvalidCriteria(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.SearchCriteria)
		wantMsg string
	}{
		{
			name:    "missing origin",
			mutate:  func(c *domain.SearchCriteria) { c.Origin = "" },
			wantMsg: "origin is required",
		},
		{
			name:    "missing destination",
			mutate:  func(c *domain.SearchCriteria) { c.Destination = "" },
			wantMsg: "destination is required",
		},
		{
			name:    "round-trip without return date",
			mutate:  func(c *domain.SearchCriteria) { c.ReturnDate = "" },
			wantMsg: "returnDate is required",
		},
		{
			name:    "too many passengers",
			mutate:  func(c *domain.SearchCriteria) { c.Passengers = 9 },
			wantMsg: "passengers cannot exceed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// The listing service must not be called for invalid criteria.
			mockFlights := domain.NewMockFlightService(ctrl)

			criteria := validTestCriteria()
			tt.mutate(&criteria)

			uc := NewFlightSearchUseCase(mockFlights)
			result, err := uc.Search(context.Background(), criteria, DefaultSearchOptions())

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, domain.IsInvalidRequest(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestFlightSearchUseCase_Search_OneWaySkipsReturnDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFlights := domain.NewMockFlightService(ctrl)
	mockFlights.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]domain.FlightOffer{}, nil)

	criteria := validTestCriteria()
	criteria.TripType = domain.TripOneWay
	criteria.ReturnDate = ""

	uc := NewFlightSearchUseCase(mockFlights)
	result, err := uc.Search(context.Background(), criteria, DefaultSearchOptions())

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalResults)
}

func TestFlightSearchUseCase_Search_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcErr := domain.NewServiceTimeoutError("flights")
	mockFlights := domain.NewMockFlightService(ctrl)
	mockFlights.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, svcErr)

	uc := NewFlightSearchUseCase(mockFlights)
	result, err := uc.Search(context.Background(), validTestCriteria(), DefaultSearchOptions())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domain.IsServiceTimeout(err))
}

func TestFlightSearchUseCase_Search_AppliesFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	offers := []domain.FlightOffer{
		createTestOffer("1", "SkyWings", 450, 0),
		createTestOffer("2", "AtlanticAir", 299, 1),
		createTestOffer("3", "SkyWings", 380, 2),
	}

	mockFlights := domain.NewMockFlightService(ctrl)
	mockFlights.EXPECT().Search(gomock.Any(), gomock.Any()).Return(offers, nil)

	maxPrice := 400.0
	maxStops := 1
	opts := SearchOptions{
		Filters: &domain.FilterOptions{MaxPrice: &maxPrice, MaxStops: &maxStops},
		SortBy:  domain.SortByPrice,
	}

	uc := NewFlightSearchUseCase(mockFlights)
	result, err := uc.Search(context.Background(), validTestCriteria(), opts)

	require.NoError(t, err)
	require.Equal(t, 1, result.TotalResults)
	assert.Equal(t, "2", result.Offers[0].ID)
}

func TestFlightSearchUseCase_Search_SetsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFlights := domain.NewMockFlightService(ctrl)
	mockFlights.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, criteria domain.SearchCriteria) ([]domain.FlightOffer, error) {
			assert.Equal(t, 1, criteria.Passengers)
			assert.Equal(t, domain.TripRoundTrip, criteria.TripType)
			return []domain.FlightOffer{}, nil
		},
	)

	criteria := validTestCriteria()
	criteria.Passengers = 0
	criteria.TripType = ""

	uc := NewFlightSearchUseCase(mockFlights)
	result, err := uc.Search(context.Background(), criteria, DefaultSearchOptions())

	require.NoError(t, err)
	assert.Equal(t, domain.TripRoundTrip, result.Criteria.TripType)
}

func TestFlightSearchUseCase_GetOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	offer := createTestOffer("42", "SkyWings", 450, 0)
	mockFlights := domain.NewMockFlightService(ctrl)
	mockFlights.EXPECT().GetByID(gomock.Any(), "42").Return(&offer, nil)

	uc := NewFlightSearchUseCase(mockFlights)
	got, err := uc.GetOffer(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "42", got.ID)
}

func TestFlightSearchUseCase_GetOffer_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewFlightSearchUseCase(domain.NewMockFlightService(ctrl))
	got, err := uc.GetOffer(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, domain.IsInvalidRequest(err))
}
