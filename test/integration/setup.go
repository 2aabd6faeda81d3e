// Package integration contains end-to-end tests that exercise the full
// gateway stack, from the HTTP surface through the use cases down to the
// backend clients, against an in-process fake backend.
package integration

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/airvoyage/flight-booking-gateway/internal/adapter/baas"
	gatewayhttp "github.com/airvoyage/flight-booking-gateway/internal/adapter/http"
	"github.com/airvoyage/flight-booking-gateway/internal/adapter/http/middleware"
	"github.com/airvoyage/flight-booking-gateway/internal/infrastructure/logger"
	"github.com/airvoyage/flight-booking-gateway/internal/session"
	"github.com/airvoyage/flight-booking-gateway/internal/token"
	"github.com/airvoyage/flight-booking-gateway/internal/usecase"
	"github.com/airvoyage/flight-booking-gateway/test/mock"
	"github.com/airvoyage/flight-booking-gateway/test/testutil"
)

// backendTimeout bounds gateway-to-backend calls in tests. Short so timeout
// tests stay fast.
const backendTimeout = 500 * time.Millisecond

// App is a fully wired gateway bound to a fake backend.
type App struct {
	Echo    *echo.Echo
	Backend *mock.Backend
	Store   *session.Store
	Tokens  *token.Manager
}

// NewApp wires the whole gateway against the given backend and starts the
// backend server. The session store is closed when the test finishes.
func NewApp(t *testing.T, backend *mock.Backend) *App {
	t.Helper()

	baseURL := backend.Start(t)
	httpc := &http.Client{Timeout: backendTimeout}

	store := session.NewStore(nil)
	store.Ready()
	t.Cleanup(store.Close)

	tokens := token.NewManager("integration-test-secret", token.DefaultTTL, nil)

	flightUC := usecase.NewFlightSearchUseCase(baas.NewFlightsClient(baseURL, httpc))
	bookingUC := usecase.NewBookingUseCase(baas.NewBookingsClient(baseURL, httpc), nil)
	profileUC := usecase.NewProfileUseCase(baas.NewUsersClient(baseURL, httpc), store)
	authUC := usecase.NewAuthUseCase(baas.NewAuthClient(baseURL, httpc), store, tokens)

	e := echo.New()
	e.HideBanner = true
	middleware.Setup(e, logger.Nop().Logger)

	resolver := func(c echo.Context, tokenString string) (*session.Session, error) {
		return authUC.Rehydrate(c.Request().Context(), tokenString)
	}

	gatewayhttp.RegisterRoutes(e, gatewayhttp.Handlers{
		Flights:  gatewayhttp.NewFlightHandler(flightUC),
		Bookings: gatewayhttp.NewBookingHandler(bookingUC, flightUC),
		Users:    gatewayhttp.NewUserHandler(profileUC),
		Auth:     gatewayhttp.NewAuthHandler(authUC),
	}, middleware.Auth(tokens, store, resolver))

	return &App{Echo: e, Backend: backend, Store: store, Tokens: tokens}
}

// Request performs one request against the gateway. An empty token sends no
// Authorization header.
func (a *App) Request(method, path, body, bearerToken string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearerToken != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearerToken)
	}

	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

// defaultFlights seeds a small listing with distinct prices, stops and
// airlines so sorting and filtering have something to bite on.
func defaultFlights() []mock.Flight {
	return []mock.Flight{
		{
			ID: "1", Airline: "SkyWings", FlightNumber: "SW 101",
			DepartureCity: "New York", ArrivalCity: "London",
			DepartureTime: "08:45", ArrivalTime: "14:15",
			DepartureCode: "JFK", ArrivalCode: "LHR",
			Duration: "5h 30m", Price: 299, Stops: 0, Aircraft: "Boeing 777",
		},
		{
			ID: "2", Airline: "Atlantic", FlightNumber: "AT 204",
			DepartureCity: "New York", ArrivalCity: "London",
			DepartureTime: "11:20", ArrivalTime: "18:05",
			DepartureCode: "EWR", ArrivalCode: "LGW",
			Duration: "6h 45m", Price: 249, Stops: 1, Aircraft: "Airbus A330",
		},
		{
			ID: "3", Airline: "SkyWings", FlightNumber: "SW 115",
			DepartureCity: "New York", ArrivalCity: "Paris",
			DepartureTime: "09:30", ArrivalTime: "16:40",
			DepartureCode: "JFK", ArrivalCode: "CDG",
			Duration: "7h 10m", Price: 320, Stops: 0, Aircraft: "Boeing 787",
		},
	}
}

// travelerAccount is the seeded account used by signed-in flows.
func travelerAccount() mock.Account {
	return mock.Account{
		ID:        "user-100",
		Email:     "jane@example.com",
		Password:  "hunter2hunter2",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

// signIn authenticates the seeded traveler and returns the bearer token.
func (a *App) signIn(t *testing.T, email, password string) string {
	t.Helper()

	rec := a.Request(http.MethodPost, "/api/v1/auth/signin",
		`{"email": "`+email+`", "password": "`+password+`"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("sign-in failed with status %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	return resp.Token
}
