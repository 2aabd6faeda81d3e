package http

import (
	"github.com/labstack/echo/v4"

	"github.com/airvoyage/flight-booking-gateway/internal/adapter/http/middleware"
	"github.com/airvoyage/flight-booking-gateway/internal/adapter/http/response"
	"github.com/airvoyage/flight-booking-gateway/internal/usecase"
)

// UserHandler handles HTTP requests for profile endpoints.
type UserHandler struct {
	profiles usecase.ProfileUseCase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(profiles usecase.ProfileUseCase) *UserHandler {
	return &UserHandler{
		profiles: profiles,
	}
}

// GetProfile handles GET /api/v1/users/me
//
// @Summary Get the signed-in user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserDTO
// @Failure 401 {object} response.ErrorDetail "Authentication required"
// @Router /api/v1/users/me [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.profiles.Get(c.Request().Context(), middleware.SessionFromContext(c))
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, ToUserDTO(user))
}

// UpdateProfile handles PUT /api/v1/users/me
//
// @Summary Save the signed-in user's profile
// @Description Replace the stored profile with the submitted form
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile form"
// @Success 200 {object} UserDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 401 {object} response.ErrorDetail "Authentication required"
// @Router /api/v1/users/me [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	user, err := h.profiles.Save(c.Request().Context(), middleware.SessionFromContext(c), ToProfileForm(&req))
	if err != nil {
		return handleError(c, err)
	}

	return response.OK(c, ToUserDTO(user))
}
