package domain

import "context"

//go:generate mockgen -source=services.go -destination=mock_services.go -package=domain

// FlightService lists flight offers. Implemented by the flight listing client.
type FlightService interface {
	// Search issues one listing request for the given criteria.
	Search(ctx context.Context, criteria SearchCriteria) ([]FlightOffer, error)

	// GetByID fetches a single offer by its listing identifier.
	GetByID(ctx context.Context, id string) (*FlightOffer, error)
}

// BookingService creates and retrieves bookings. Implemented by the booking
// client.
type BookingService interface {
	// Create submits one composite booking request and returns the booking
	// reference assigned by the service.
	Create(ctx context.Context, req BookingRequest) (string, error)

	// GetByReference fetches a booking by reference. Returns an error wrapping
	// ErrBookingNotFound when no booking exists for the reference.
	GetByReference(ctx context.Context, reference string) (*BookingRecord, error)

	// ListByUser fetches all bookings belonging to the given user.
	ListByUser(ctx context.Context, userID string) ([]BookingRecord, error)
}

// UserService reads and updates stored user profiles. Implemented by the users
// client, which owns the translation between the service's external field
// naming and the domain's.
type UserService interface {
	// Get fetches the user's stored profile.
	Get(ctx context.Context, userID string) (*User, error)

	// Update sends the full form snapshot and returns the stored user as
	// confirmed by the service.
	Update(ctx context.Context, userID string, form ProfileForm) (*User, error)
}

// Credentials are the sign-in inputs.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpInput is the registration payload forwarded to the auth provider.
type SignUpInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AuthService is the external auth provider.
type AuthService interface {
	// SignUp registers a new user and returns the created identity.
	SignUp(ctx context.Context, input SignUpInput) (*User, error)

	// SignIn verifies credentials and returns the user's identity.
	SignIn(ctx context.Context, creds Credentials) (*User, error)

	// SignOut invalidates the user's session with the provider.
	SignOut(ctx context.Context, userID string) error

	// FetchSession rehydrates the user for an existing session, typically
	// after a restart when a client presents a still-valid token.
	FetchSession(ctx context.Context, userID string) (*User, error)
}
