// Package main is the entry point for the flight booking gateway.
//
//	@title						Flight Booking Gateway API
//	@version					1.0.0
//	@description				A gateway for searching flights, booking them, and managing traveler accounts, backed by a hosted application-services backend.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/airvoyage/flight-booking-gateway/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/airvoyage/flight-booking-gateway/docs"

	"github.com/airvoyage/flight-booking-gateway/internal/adapter/baas"
	gatewayhttp "github.com/airvoyage/flight-booking-gateway/internal/adapter/http"
	"github.com/airvoyage/flight-booking-gateway/internal/adapter/http/middleware"
	"github.com/airvoyage/flight-booking-gateway/internal/config"
	"github.com/airvoyage/flight-booking-gateway/internal/infrastructure/logger"
	"github.com/airvoyage/flight-booking-gateway/internal/infrastructure/retry"
	"github.com/airvoyage/flight-booking-gateway/internal/session"
	"github.com/airvoyage/flight-booking-gateway/internal/token"
	"github.com/airvoyage/flight-booking-gateway/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	probeTimeout    = 30 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	appLog := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "booking-gateway",
	})
	logger.SetGlobal(appLog)

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("backend", cfg.Backend.BaseURL).
		Msg("Configuration loaded")

	// Shared HTTP client for all backend service calls
	httpc := &http.Client{Timeout: cfg.Backend.RequestTimeout}

	flightsClient := baas.NewFlightsClient(cfg.Backend.BaseURL, httpc)
	bookingsClient := baas.NewBookingsClient(cfg.Backend.BaseURL, httpc)
	usersClient := baas.NewUsersClient(cfg.Backend.BaseURL, httpc)
	authClient := baas.NewAuthClient(cfg.Backend.BaseURL, httpc)

	probeBackend(appLog, cfg, flightsClient)

	// Session store lives for the process lifetime. Rehydration via token
	// claims covers sessions lost to a restart.
	store := session.NewStore(nil)
	store.Ready()
	defer store.Close()

	tokens := token.NewManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL, nil)

	flightUC := usecase.NewFlightSearchUseCase(flightsClient)
	bookingUC := usecase.NewBookingUseCase(bookingsClient, nil)
	profileUC := usecase.NewProfileUseCase(usersClient, store)
	authUC := usecase.NewAuthUseCase(authClient, store, tokens)

	handlers := gatewayhttp.Handlers{
		Flights:  gatewayhttp.NewFlightHandler(flightUC),
		Bookings: gatewayhttp.NewBookingHandler(bookingUC, flightUC),
		Users:    gatewayhttp.NewUserHandler(profileUC),
		Auth:     gatewayhttp.NewAuthHandler(authUC),
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, appLog.Logger)

	resolver := func(c echo.Context, tokenString string) (*session.Session, error) {
		return authUC.Rehydrate(c.Request().Context(), tokenString)
	}
	authMW := middleware.Auth(tokens, store, resolver)

	gatewayhttp.RegisterRoutes(e, handlers, authMW)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, appLog)
}

// probeBackend checks that the backend answers before the gateway starts
// taking traffic. The gateway still starts when the probe fails; request
// paths surface backend failures on their own.
func probeBackend(appLog *logger.Logger, cfg *config.Config, client *baas.FlightsClient) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	probeCfg := retry.ProbeConfig.WithMaxAttempts(cfg.Backend.ProbeAttempts)
	if err := retry.Do(ctx, func() error { return client.Ping(ctx) }, probeCfg); err != nil {
		appLog.Warn().Err(err).Msg("Backend unreachable at startup")
		return
	}
	appLog.Info().Msg("Backend reachable")
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, appLog *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	appLog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error during server shutdown")
	}

	appLog.Info().Msg("Server stopped")
}
