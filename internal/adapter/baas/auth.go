package baas

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/airvoyage/flight-booking-gateway/internal/domain"
)

// AuthServiceName identifies the auth provider in errors and logs.
const AuthServiceName = "auth"

// authResponse is the auth provider's reply to sign-up, sign-in and session
// fetches: the user object, sometimes nested under "user".
type authResponse struct {
	User userDTO `json:"user"`
	userDTO
}

// toUser prefers the nested user object, falling back to the flat shape.
func (r *authResponse) toUser() *domain.User {
	if r.User.ID != "" {
		return r.User.toUser()
	}
	return r.userDTO.toUser()
}

// AuthClient implements domain.AuthService against the auth provider.
type AuthClient struct {
	*Client
}

// NewAuthClient creates an AuthClient rooted at baseURL.
func NewAuthClient(baseURL string, httpc *http.Client) *AuthClient {
	return &AuthClient{Client: NewClient(AuthServiceName, baseURL, httpc)}
}

// SignUp implements domain.AuthService.SignUp.
func (c *AuthClient) SignUp(ctx context.Context, input domain.SignUpInput) (*domain.User, error) {
	var resp authResponse
	if err := c.post(ctx, "/auth/signup", input, &resp); err != nil {
		return nil, err
	}
	return requireUser(resp.toUser())
}

// SignIn implements domain.AuthService.SignIn.
func (c *AuthClient) SignIn(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	var resp authResponse
	if err := c.post(ctx, "/auth/signin", creds, &resp); err != nil {
		return nil, err
	}
	return requireUser(resp.toUser())
}

// SignOut implements domain.AuthService.SignOut.
func (c *AuthClient) SignOut(ctx context.Context, userID string) error {
	body := map[string]string{"userId": userID}
	return c.post(ctx, "/auth/signout", body, nil)
}

// FetchSession implements domain.AuthService.FetchSession. A 404 means the
// provider no longer recognizes the session's user.
func (c *AuthClient) FetchSession(ctx context.Context, userID string) (*domain.User, error) {
	var resp authResponse
	err := c.get(ctx, "/auth/session/"+url.PathEscape(userID), nil, &resp)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: no session for user", domain.ErrUnauthenticated)
		}
		return nil, err
	}
	return requireUser(resp.toUser())
}

// requireUser rejects a structurally OK response that carries no identity.
func requireUser(user *domain.User) (*domain.User, error) {
	if user == nil || user.ID == "" {
		return nil, domain.NewServiceError(AuthServiceName,
			errors.New("response carried no user identity"))
	}
	return user, nil
}

// Ensure AuthClient implements domain.AuthService at compile time.
var _ domain.AuthService = (*AuthClient)(nil)
