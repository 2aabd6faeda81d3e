package baas

import (
	"context"
	"net/http"
	"net/url"

	"github.com/airvoyage/flight-booking-gateway/internal/domain"
)

// UsersServiceName identifies the users service in errors and logs.
const UsersServiceName = "users"

// userDTO is the users service's wire shape for a profile. The name fields
// come back snake_case on writes but camelCase on reads, so both spellings
// are decoded and the snake_case one wins when present.
type userDTO struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	FirstNameSnake string `json:"first_name"`
	LastNameSnake  string `json:"last_name"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	DateOfBirth    string `json:"dateOfBirth"`
	PassportNumber string `json:"passportNumber"`
	Avatar         string `json:"avatar"`
}

// toUser resolves the dual name spellings into the domain user.
func (d *userDTO) toUser() *domain.User {
	first := d.FirstName
	if d.FirstNameSnake != "" {
		first = d.FirstNameSnake
	}
	last := d.LastName
	if d.LastNameSnake != "" {
		last = d.LastNameSnake
	}

	return &domain.User{
		ID:             d.ID,
		Email:          d.Email,
		FirstName:      first,
		LastName:       last,
		Phone:          d.Phone,
		Address:        d.Address,
		DateOfBirth:    d.DateOfBirth,
		PassportNumber: d.PassportNumber,
		Avatar:         d.Avatar,
	}
}

// UsersClient implements domain.UserService against the users service.
type UsersClient struct {
	*Client
}

// NewUsersClient creates a UsersClient rooted at baseURL.
func NewUsersClient(baseURL string, httpc *http.Client) *UsersClient {
	return &UsersClient{Client: NewClient(UsersServiceName, baseURL, httpc)}
}

// Get implements domain.UserService.Get.
func (c *UsersClient) Get(ctx context.Context, userID string) (*domain.User, error) {
	var dto userDTO
	if err := c.get(ctx, "/users/"+url.PathEscape(userID), nil, &dto); err != nil {
		return nil, err
	}
	return dto.toUser(), nil
}

// Update implements domain.UserService.Update. The full form snapshot is sent
// and the service's confirmed object is returned, so the caller can replace
// its copy wholesale.
func (c *UsersClient) Update(ctx context.Context, userID string, form domain.ProfileForm) (*domain.User, error) {
	var dto userDTO
	if err := c.put(ctx, "/users/"+url.PathEscape(userID), form, &dto); err != nil {
		return nil, err
	}
	return dto.toUser(), nil
}

// Ensure UsersClient implements domain.UserService at compile time.
var _ domain.UserService = (*UsersClient)(nil)
