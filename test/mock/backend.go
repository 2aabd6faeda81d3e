// Package mock provides test doubles for the booking gateway. The central
// one is Backend, a configurable in-process stand-in for the hosted backend
// the gateway fronts. It supports configurable delays, errors, and seeded
// data for testing timeouts and failure paths end to end.
package mock

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// Flight is the backend's wire shape for one flight. City and time fields are
// snake_case, the rest camelCase, matching the real service's inconsistency.
type Flight struct {
	ID            string  `json:"id"`
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flightNumber"`
	DepartureCity string  `json:"departure_city"`
	ArrivalCity   string  `json:"arrival_city"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	DepartureCode string  `json:"departureAirport"`
	ArrivalCode   string  `json:"arrivalAirport"`
	Duration      string  `json:"duration"`
	Price         float64 `json:"price"`
	Stops         int     `json:"stops"`
	Aircraft      string  `json:"aircraft"`
}

// Account is a seeded backend user with credentials.
type Account struct {
	ID        string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// Backend is a configurable fake of the hosted backend. Configure it with the
// builder methods, then Start it and point the gateway's clients at URL().
type Backend struct {
	mu sync.Mutex

	flights     []Flight
	accounts    map[string]*Account          // keyed by email
	bookings    map[string]map[string]any    // keyed by reference
	profiles    map[string]map[string]string // extra profile fields by user ID
	nextBooking int

	searchDelay time.Duration
	searchFail  int // HTTP status to return from search, 0 for none
	searchCalls int

	server *httptest.Server
}

// NewBackend creates an empty backend. Seed it before Start.
func NewBackend() *Backend {
	return &Backend{
		accounts: make(map[string]*Account),
		bookings: make(map[string]map[string]any),
		profiles: make(map[string]map[string]string),
	}
}

// WithFlights seeds the flight listing.
func (b *Backend) WithFlights(flights ...Flight) *Backend {
	b.flights = append(b.flights, flights...)
	return b
}

// WithAccount seeds a user account for sign-in.
func (b *Backend) WithAccount(acc Account) *Backend {
	b.accounts[acc.Email] = &acc
	return b
}

// WithSearchDelay makes the flight search wait before answering.
// Useful for testing gateway-side timeouts.
func (b *Backend) WithSearchDelay(d time.Duration) *Backend {
	b.searchDelay = d
	return b
}

// WithSearchFailure makes the flight search answer with the given status.
func (b *Backend) WithSearchFailure(status int) *Backend {
	b.searchFail = status
	return b
}

// SearchCalls returns how many times the flight search was hit.
func (b *Backend) SearchCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.searchCalls
}

// Start serves the backend over HTTP and returns its base URL. The server is
// shut down automatically when the test finishes.
func (b *Backend) Start(t interface{ Cleanup(func()) }) string {
	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/flights", b.searchFlights)
	e.GET("/flights/:id", b.getFlight)

	e.POST("/bookings", b.createBooking)
	e.GET("/bookings", b.listBookings)
	e.GET("/bookings/:reference", b.getBooking)

	e.GET("/users/:id", b.getUser)
	e.PUT("/users/:id", b.updateUser)

	e.POST("/auth/signup", b.signUp)
	e.POST("/auth/signin", b.signIn)
	e.POST("/auth/signout", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/auth/session/:userID", b.fetchSession)

	b.server = httptest.NewServer(e)
	t.Cleanup(b.server.Close)
	return b.server.URL
}

// URL returns the running server's base URL.
func (b *Backend) URL() string {
	return b.server.URL
}

func (b *Backend) searchFlights(c echo.Context) error {
	b.mu.Lock()
	b.searchCalls++
	delay, fail := b.searchDelay, b.searchFail
	b.mu.Unlock()

	if delay > 0 {
		select {
		case <-c.Request().Context().Done():
			return c.Request().Context().Err()
		case <-time.After(delay):
		}
	}
	if fail != 0 {
		return c.JSON(fail, map[string]string{"error": "search unavailable"})
	}

	origin := c.QueryParam("departure_city")
	destination := c.QueryParam("arrival_city")

	matches := make([]Flight, 0)
	for _, f := range b.flights {
		if origin != "" && !strings.EqualFold(f.DepartureCity, origin) {
			continue
		}
		if destination != "" && !strings.EqualFold(f.ArrivalCity, destination) {
			continue
		}
		matches = append(matches, f)
	}
	return c.JSON(http.StatusOK, matches)
}

func (b *Backend) getFlight(c echo.Context) error {
	id := c.Param("id")
	for _, f := range b.flights {
		if f.ID == id {
			return c.JSON(http.StatusOK, f)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "flight not found"})
}

func (b *Backend) createBooking(c echo.Context) error {
	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed booking"})
	}

	b.mu.Lock()
	b.nextBooking++
	reference := fmt.Sprintf("BK-2026-%03d", b.nextBooking)
	body["bookingReference"] = reference
	b.bookings[reference] = body
	b.mu.Unlock()

	return c.JSON(http.StatusCreated, map[string]string{"bookingReference": reference})
}

func (b *Backend) getBooking(c echo.Context) error {
	b.mu.Lock()
	record, ok := b.bookings[c.Param("reference")]
	b.mu.Unlock()

	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "booking not found"})
	}
	return c.JSON(http.StatusOK, record)
}

func (b *Backend) listBookings(c echo.Context) error {
	userID := c.QueryParam("userId")

	b.mu.Lock()
	records := make([]map[string]any, 0)
	for _, record := range b.bookings {
		if id, _ := record["userId"].(string); id == userID {
			records = append(records, record)
		}
	}
	b.mu.Unlock()

	return c.JSON(http.StatusOK, records)
}

func (b *Backend) getUser(c echo.Context) error {
	acc := b.findAccountByID(c.Param("id"))
	if acc == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	}
	return c.JSON(http.StatusOK, b.userJSON(acc, false))
}

func (b *Backend) updateUser(c echo.Context) error {
	acc := b.findAccountByID(c.Param("id"))
	if acc == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	}

	var form map[string]string
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed profile"})
	}

	b.mu.Lock()
	if v, ok := form["firstName"]; ok {
		acc.FirstName = v
	}
	if v, ok := form["lastName"]; ok {
		acc.LastName = v
	}
	if v, ok := form["phone"]; ok {
		acc.Phone = v
	}
	b.profiles[acc.ID] = form
	b.mu.Unlock()

	// Writes echo the name fields back snake_case.
	return c.JSON(http.StatusOK, b.userJSON(acc, true))
}

func (b *Backend) signUp(c echo.Context) error {
	var input struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed sign-up"})
	}

	b.mu.Lock()
	if _, exists := b.accounts[input.Email]; exists {
		b.mu.Unlock()
		return c.JSON(http.StatusConflict, map[string]string{"error": "email already registered"})
	}
	acc := &Account{
		ID:        fmt.Sprintf("user-%d", len(b.accounts)+1),
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	b.accounts[input.Email] = acc
	b.mu.Unlock()

	// Sign-up nests the user object.
	return c.JSON(http.StatusCreated, map[string]any{"user": b.userJSON(acc, false)})
}

func (b *Backend) signIn(c echo.Context) error {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed credentials"})
	}

	b.mu.Lock()
	acc, ok := b.accounts[creds.Email]
	b.mu.Unlock()

	if !ok || acc.Password != creds.Password {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}

	// Sign-in answers with the flat user shape.
	return c.JSON(http.StatusOK, b.userJSON(acc, false))
}

func (b *Backend) fetchSession(c echo.Context) error {
	acc := b.findAccountByID(c.Param("userID"))
	if acc == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no session"})
	}
	return c.JSON(http.StatusOK, map[string]any{"user": b.userJSON(acc, false)})
}

func (b *Backend) findAccountByID(id string) *Account {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, acc := range b.accounts {
		if acc.ID == id {
			return acc
		}
	}
	return nil
}

// userJSON renders an account as the users service would, camelCase on reads
// and snake_case name fields on writes.
func (b *Backend) userJSON(acc *Account, snakeNames bool) map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := map[string]any{
		"id":    acc.ID,
		"email": acc.Email,
		"phone": acc.Phone,
	}
	for k, v := range b.profiles[acc.ID] {
		if k != "firstName" && k != "lastName" && v != "" {
			out[k] = v
		}
	}
	if snakeNames {
		out["first_name"] = acc.FirstName
		out["last_name"] = acc.LastName
	} else {
		out["firstName"] = acc.FirstName
		out["lastName"] = acc.LastName
	}
	return out
}
