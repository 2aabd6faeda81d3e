package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/airvoyage/flight-booking-gateway/internal/domain"
	"github.com/airvoyage/flight-booking-gateway/internal/session"
	"github.com/airvoyage/flight-booking-gateway/internal/token"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SignUpForm is the registration form, validated field by field before any
// request reaches the auth provider.
type SignUpForm struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AgreeTerms      bool   `json:"agreeTerms"`
}

// FieldErrors validates the form and returns one message per invalid field,
// keyed by field name. An empty map means the form is valid.
func (f *SignUpForm) FieldErrors() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.FirstName) == "" {
		errs["firstName"] = "first name is required"
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs["lastName"] = "last name is required"
	}
	if f.Email == "" {
		errs["email"] = "email is required"
	} else if !emailRegex.MatchString(f.Email) {
		errs["email"] = "email is invalid"
	}
	if f.Password == "" {
		errs["password"] = "password is required"
	} else if len(f.Password) < MinPasswordLength {
		errs["password"] = "password must be at least 8 characters"
	}
	if f.ConfirmPassword != f.Password {
		errs["confirmPassword"] = "passwords do not match"
	}
	if !f.AgreeTerms {
		errs["agreeTerms"] = "you must agree to the terms"
	}

	return errs
}

// SignUpValidationError carries the per-field messages for a rejected
// registration form. It wraps ErrInvalidRequest.
type SignUpValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *SignUpValidationError) Error() string {
	return "sign-up form is invalid"
}

// Unwrap returns ErrInvalidRequest so errors.Is works.
func (e *SignUpValidationError) Unwrap() error {
	return domain.ErrInvalidRequest
}

// AuthResult is the outcome of a successful sign-up or sign-in: the
// established session plus the token the client presents on later requests.
type AuthResult struct {
	Session *session.Session
	Token   string
}

// AuthUseCase manages the sign-up, sign-in, sign-out and rehydration flows.
type AuthUseCase interface {
	// SignUp validates the form, registers the user and establishes a
	// session. Validation failures return a *SignUpValidationError and no
	// provider request is made.
	SignUp(ctx context.Context, form SignUpForm) (*AuthResult, error)

	// SignIn verifies credentials and establishes a session.
	SignIn(ctx context.Context, creds domain.Credentials) (*AuthResult, error)

	// SignOut ends the session both locally and with the auth provider.
	SignOut(ctx context.Context, sess *session.Session) error

	// Rehydrate re-establishes the session for a still-valid token presented
	// after a restart, fetching the user from the auth provider when the
	// session is not held locally.
	Rehydrate(ctx context.Context, tokenString string) (*session.Session, error)
}

// authUseCase implements AuthUseCase.
type authUseCase struct {
	auth   domain.AuthService
	store  *session.Store
	tokens *token.Manager
}

// NewAuthUseCase creates an AuthUseCase backed by the given auth provider,
// session store and token manager.
func NewAuthUseCase(auth domain.AuthService, store *session.Store, tokens *token.Manager) AuthUseCase {
	return &authUseCase{auth: auth, store: store, tokens: tokens}
}

// SignUp implements AuthUseCase.SignUp.
func (uc *authUseCase) SignUp(ctx context.Context, form SignUpForm) (*AuthResult, error) {
	if errs := form.FieldErrors(); len(errs) > 0 {
		return nil, &SignUpValidationError{Fields: errs}
	}

	user, err := uc.auth.SignUp(ctx, domain.SignUpInput{
		Email:     form.Email,
		Password:  form.Password,
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
	})
	if err != nil {
		return nil, err
	}

	return uc.establish(user)
}

// SignIn implements AuthUseCase.SignIn.
func (uc *authUseCase) SignIn(ctx context.Context, creds domain.Credentials) (*AuthResult, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, domain.WrapInvalidRequest("email and password are required")
	}

	user, err := uc.auth.SignIn(ctx, creds)
	if err != nil {
		return nil, err
	}

	return uc.establish(user)
}

// establish creates the session and issues its token.
func (uc *authUseCase) establish(user *domain.User) (*AuthResult, error) {
	sess := uc.store.Create(user)
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}

	tok, err := uc.tokens.Issue(sess.ID, user.ID)
	if err != nil {
		uc.store.Delete(sess.ID)
		return nil, err
	}

	return &AuthResult{Session: sess, Token: tok}, nil
}

// SignOut implements AuthUseCase.SignOut.
func (uc *authUseCase) SignOut(ctx context.Context, sess *session.Session) error {
	if sess == nil || sess.User == nil {
		return domain.ErrUnauthenticated
	}

	// The local session ends regardless of whether the provider call
	// succeeds; a failed provider sign-out must not leave the client
	// signed in.
	uc.store.Delete(sess.ID)
	return uc.auth.SignOut(ctx, sess.User.ID)
}

// Rehydrate implements AuthUseCase.Rehydrate.
func (uc *authUseCase) Rehydrate(ctx context.Context, tokenString string) (*session.Session, error) {
	claims, err := uc.tokens.Parse(tokenString)
	if err != nil {
		return nil, err
	}

	if sess := uc.store.Get(claims.SessionID); sess != nil {
		return sess, nil
	}

	user, err := uc.auth.FetchSession(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	sess := uc.store.Restore(claims.SessionID, user)
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}
	return sess, nil
}

// Ensure authUseCase implements AuthUseCase at compile time.
var _ AuthUseCase = (*authUseCase)(nil)
