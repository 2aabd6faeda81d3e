package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/airvoyage/flight-booking-gateway/internal/adapter/http/middleware"
	"github.com/airvoyage/flight-booking-gateway/internal/adapter/http/response"
	"github.com/airvoyage/flight-booking-gateway/internal/usecase"
)

// AuthHandler handles HTTP requests for auth endpoints.
type AuthHandler struct {
	auth usecase.AuthUseCase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		auth: auth,
	}
}

// SignUp handles POST /api/v1/auth/signup
//
// @Summary Register a new account
// @Description Validate the registration form, create the account, and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Registration form"
// @Success 201 {object} SessionDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	result, err := h.auth.SignUp(c.Request().Context(), ToSignUpForm(&req))
	if err != nil {
		var vErr *usecase.SignUpValidationError
		if errors.As(err, &vErr) {
			return response.ValidationError(c, vErr.Fields)
		}
		return handleError(c, err)
	}

	return response.Created(c, SessionDTO{
		Token: result.Token,
		User:  ToUserDTO(result.Session.User),
	})
}

// SignIn handles POST /api/v1/auth/signin
//
// @Summary Sign in
// @Description Verify credentials and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} SessionDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 401 {object} response.ErrorDetail "Invalid credentials"
// @Router /api/v1/auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	result, err := h.auth.SignIn(c.Request().Context(), domainCredentials(&req))
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, SessionDTO{
		Token: result.Token,
		User:  ToUserDTO(result.Session.User),
	})
}

// SignOut handles POST /api/v1/auth/signout
//
// @Summary Sign out
// @Description End the session locally and with the auth provider
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 204 "Signed out"
// @Failure 401 {object} response.ErrorDetail "Authentication required"
// @Router /api/v1/auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.auth.SignOut(c.Request().Context(), middleware.SessionFromContext(c)); err != nil {
		// The local session is already gone; a provider failure is reported
		// as unavailable but the client should still drop its token.
		return handleError(c, err)
	}

	return response.NoContent(c)
}

// Session handles GET /api/v1/auth/session
//
// @Summary Get the current session
// @Description Return the signed-in user for a valid token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserDTO
// @Failure 401 {object} response.ErrorDetail "Authentication required"
// @Router /api/v1/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if sess == nil || sess.User == nil {
		return response.Unauthorized(c)
	}

	return response.OK(c, ToUserDTO(sess.User))
}
