// Package http provides the HTTP handler layer for the booking gateway API.
package http

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups the per-area handlers for route registration.
type Handlers struct {
	Flights  *FlightHandler
	Bookings *BookingHandler
	Users    *UserHandler
	Auth     *AuthHandler
}

// RegisterRoutes registers all booking gateway API routes. The authMW guard
// is applied to the routes that require a signed-in session; search and
// confirmation lookups stay public.
func RegisterRoutes(e *echo.Echo, h Handlers, authMW echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Flights.Health)

	// API v1 group
	api := e.Group("/api/v1")

	flights := api.Group("/flights")
	flights.POST("/search", h.Flights.SearchFlights)
	flights.GET("/:id", h.Flights.GetFlight)

	bookings := api.Group("/bookings")
	bookings.POST("", h.Bookings.CreateBooking, authMW)
	bookings.GET("", h.Bookings.ListBookings, authMW)
	bookings.GET("/:reference", h.Bookings.GetConfirmation)

	users := api.Group("/users", authMW)
	users.GET("/me", h.Users.GetProfile)
	users.PUT("/me", h.Users.UpdateProfile)

	auth := api.Group("/auth")
	auth.POST("/signup", h.Auth.SignUp)
	auth.POST("/signin", h.Auth.SignIn)
	auth.POST("/signout", h.Auth.SignOut, authMW)
	auth.GET("/session", h.Auth.Session, authMW)
}
