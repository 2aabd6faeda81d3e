package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/airvoyage/flight-booking-gateway/internal/domain"
	"github.com/airvoyage/flight-booking-gateway/internal/session"
	"github.com/airvoyage/flight-booking-gateway/internal/token"
)

// validSignUpForm returns a form that passes all field checks.
func validSignUpForm() SignUpForm {
	return SignUpForm{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Password:        "hunter2hunter2",
		ConfirmPassword: "hunter2hunter2",
		AgreeTerms:      true,
	}
}

// newAuthFixture builds an AuthUseCase over a ready store and real token
// manager, returning all three.
func newAuthFixture(ctrl *gomock.Controller) (AuthUseCase, *domain.MockAuthService, *session.Store, *token.Manager) {
	mockAuth := domain.NewMockAuthService(ctrl)
	store := session.NewStore(nil)
	store.Ready()
	tokens := token.NewManager("test-secret", token.DefaultTTL, nil)
	return NewAuthUseCase(mockAuth, store, tokens), mockAuth, store, tokens
}

func TestSignUpForm_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SignUpForm)
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing first name",
			mutate:    func(f *SignUpForm) { f.FirstName = "  " },
			wantField: "firstName",
			wantMsg:   "first name is required",
		},
		{
			name:      "missing last name",
			mutate:    func(f *SignUpForm) { f.LastName = "" },
			wantField: "lastName",
			wantMsg:   "last name is required",
		},
		{
			name:      "missing email",
			mutate:    func(f *SignUpForm) { f.Email = "" },
			wantField: "email",
			wantMsg:   "email is required",
		},
		{
			name:      "malformed email",
			mutate:    func(f *SignUpForm) { f.Email = "not-an-email" },
			wantField: "email",
			wantMsg:   "email is invalid",
		},
		{
			name: "short password",
			mutate: func(f *SignUpForm) {
				f.Password = "short"
				f.ConfirmPassword = "short"
			},
			wantField: "password",
			wantMsg:   "password must be at least 8 characters",
		},
		{
			name:      "mismatched confirmation",
			mutate:    func(f *SignUpForm) { f.ConfirmPassword = "different8chars" },
			wantField: "confirmPassword",
			wantMsg:   "passwords do not match",
		},
		{
			name:      "terms not agreed",
			mutate:    func(f *SignUpForm) { f.AgreeTerms = false },
			wantField: "agreeTerms",
			wantMsg:   "you must agree to the terms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validSignUpForm()
			tt.mutate(&form)

			errs := form.FieldErrors()
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantMsg, errs[tt.wantField])
		})
	}
}

func TestSignUpForm_FieldErrors_Valid(t *testing.T) {
	form := validSignUpForm()
	assert.Empty(t, form.FieldErrors())
}

func TestSignUpForm_FieldErrors_CollectsAll(t *testing.T) {
	// An empty form reports every field at once, not just the first.
	form := SignUpForm{}
	errs := form.FieldErrors()
	assert.Len(t, errs, 5)
}

func TestAuthUseCase_SignUp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockAuth, store, tokens := newAuthFixture(ctrl)

	user := &domain.User{ID: "user-1", Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"}
	mockAuth.EXPECT().SignUp(gomock.Any(), domain.SignUpInput{
		Email:     "jane@example.com",
		Password:  "hunter2hunter2",
		FirstName: "Jane",
		LastName:  "Doe",
	}).Return(user, nil)

	result, err := uc.SignUp(context.Background(), validSignUpForm())

	require.NoError(t, err)
	require.NotNil(t, result.Session)
	assert.Equal(t, "user-1", result.Session.User.ID)
	assert.Equal(t, 1, store.Len())

	claims, err := tokens.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Session.ID, claims.SessionID)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestAuthUseCase_SignUp_InvalidForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The provider must not be called for an invalid form.
	uc, _, store, _ := newAuthFixture(ctrl)

	form := validSignUpForm()
	form.Password = "short"
	form.ConfirmPassword = "short"

	result, err := uc.SignUp(context.Background(), form)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domain.IsInvalidRequest(err))

	var vErr *SignUpValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "password")
	assert.Equal(t, 0, store.Len())
}

func TestAuthUseCase_SignUp_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockAuth, store, _ := newAuthFixture(ctrl)
	mockAuth.EXPECT().SignUp(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewServiceUnavailableError("auth"))

	result, err := uc.SignUp(context.Background(), validSignUpForm())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domain.IsServiceUnavailable(err))
	assert.Equal(t, 0, store.Len())
}

func TestAuthUseCase_SignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockAuth, store, _ := newAuthFixture(ctrl)

	user := &domain.User{ID: "user-1", Email: "jane@example.com"}
	mockAuth.EXPECT().SignIn(gomock.Any(), domain.Credentials{
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
	}).Return(user, nil)

	result, err := uc.SignIn(context.Background(), domain.Credentials{
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, 1, store.Len())
}

func TestAuthUseCase_SignIn_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _ := newAuthFixture(ctrl)

	_, err := uc.SignIn(context.Background(), domain.Credentials{Email: "jane@example.com"})
	assert.True(t, domain.IsInvalidRequest(err))

	_, err = uc.SignIn(context.Background(), domain.Credentials{Password: "hunter2hunter2"})
	assert.True(t, domain.IsInvalidRequest(err))
}

func TestAuthUseCase_SignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockAuth, store, _ := newAuthFixture(ctrl)

	user := &domain.User{ID: "user-1", Email: "jane@example.com"}
	mockAuth.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(user, nil)
	mockAuth.EXPECT().SignOut(gomock.Any(), "user-1").Return(nil)

	result, err := uc.SignIn(context.Background(), domain.Credentials{
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	require.NoError(t, uc.SignOut(context.Background(), result.Session))
	assert.Equal(t, 0, store.Len())
}

func TestAuthUseCase_SignOut_ProviderFailureStillEndsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockAuth, store, _ := newAuthFixture(ctrl)

	user := &domain.User{ID: "user-1", Email: "jane@example.com"}
	mockAuth.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(user, nil)
	mockAuth.EXPECT().SignOut(gomock.Any(), "user-1").
		Return(domain.NewServiceUnavailableError("auth"))

	result, err := uc.SignIn(context.Background(), domain.Credentials{
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	err = uc.SignOut(context.Background(), result.Session)
	require.Error(t, err)
	// The local session is gone regardless.
	assert.Equal(t, 0, store.Len())
}

func TestAuthUseCase_Rehydrate_LiveSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockAuth, _, _ := newAuthFixture(ctrl)

	user := &domain.User{ID: "user-1", Email: "jane@example.com"}
	mockAuth.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(user, nil)

	result, err := uc.SignIn(context.Background(), domain.Credentials{
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	// A held session is returned without touching the provider.
	sess, err := uc.Rehydrate(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Session.ID, sess.ID)
}

func TestAuthUseCase_Rehydrate_AfterRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockAuth, store, tokens := newAuthFixture(ctrl)

	// A token minted before a restart: valid signature, no held session.
	tok, err := tokens.Issue("sess-old", "user-1")
	require.NoError(t, err)

	user := &domain.User{ID: "user-1", Email: "jane@example.com"}
	mockAuth.EXPECT().FetchSession(gomock.Any(), "user-1").Return(user, nil)

	sess, err := uc.Rehydrate(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "sess-old", sess.ID)
	assert.Equal(t, "user-1", sess.User.ID)
	assert.Equal(t, 1, store.Len())
}

func TestAuthUseCase_Rehydrate_BadToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _ := newAuthFixture(ctrl)

	_, err := uc.Rehydrate(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.True(t, domain.IsUnauthenticated(err))
}

func TestAuthUseCase_Rehydrate_ProviderRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockAuth, _, tokens := newAuthFixture(ctrl)

	tok, err := tokens.Issue("sess-old", "user-1")
	require.NoError(t, err)

	mockAuth.EXPECT().FetchSession(gomock.Any(), "user-1").
		Return(nil, domain.ErrUnauthenticated)

	_, err = uc.Rehydrate(context.Background(), tok)
	require.Error(t, err)
	assert.True(t, domain.IsUnauthenticated(err))
}
