package usecase

import (
	"context"

	"github.com/airvoyage/flight-booking-gateway/internal/domain"
	"github.com/airvoyage/flight-booking-gateway/internal/infrastructure/timeutil"
	"github.com/airvoyage/flight-booking-gateway/internal/session"
)

// ConfirmationState is the terminal state of a confirmation lookup.
type ConfirmationState string

// Confirmation lookup states. Loading is the implicit initial state; a lookup
// always resolves to one of the other three.
const (
	StateLoading  ConfirmationState = "loading"
	StateSuccess  ConfirmationState = "success"
	StateNotFound ConfirmationState = "not-found"
	StateError    ConfirmationState = "error"
)

// Fixed user-facing confirmation messages.
const (
	MsgMissingReference = "Booking reference not found in URL."
	MsgBookingNotFound  = "Booking details not found."
)

// Confirmation is the resolved outcome of a booking lookup.
type Confirmation struct {
	// State is the terminal lookup state.
	State ConfirmationState `json:"state"`

	// Message is the user-facing message for not-found and error states.
	Message string `json:"message,omitempty"`

	// View is the defensively rendered booking, present only on success.
	View *domain.ConfirmationView `json:"booking,omitempty"`
}

// BookingUseCase defines the booking submission and retrieval operations.
type BookingUseCase interface {
	// Submit builds the composite booking request from the form, sends it
	// once, and returns the booking reference assigned by the service.
	// It fails with domain.ErrUnauthenticated when no session is present;
	// no request is sent in that case. On failure the form is left intact
	// so the caller can retry.
	Submit(ctx context.Context, sess *session.Session, form *domain.BookingForm) (string, error)

	// Confirmation fetches a booking by reference and resolves the
	// confirmation state machine.
	Confirmation(ctx context.Context, reference string) Confirmation

	// ListForUser fetches the session user's bookings.
	ListForUser(ctx context.Context, sess *session.Session) ([]domain.BookingRecord, error)
}

// bookingUseCase implements BookingUseCase.
type bookingUseCase struct {
	bookings domain.BookingService
	clock    timeutil.Clock
}

// NewBookingUseCase creates a BookingUseCase backed by the given booking
// service. A nil clock falls back to the system clock.
func NewBookingUseCase(bookings domain.BookingService, clock timeutil.Clock) BookingUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &bookingUseCase{bookings: bookings, clock: clock}
}

// Submit implements BookingUseCase.Submit.
func (uc *bookingUseCase) Submit(ctx context.Context, sess *session.Session, form *domain.BookingForm) (string, error) {
	if sess == nil || sess.User == nil {
		return "", domain.ErrUnauthenticated
	}

	// Payment details are checked locally and go no further.
	if err := form.Payment.Validate(); err != nil {
		return "", err
	}

	req := form.BuildRequest(sess.User.ID, timeutil.Timestamp(uc.clock.Now()))
	if err := req.Validate(); err != nil {
		return "", err
	}

	reference, err := uc.bookings.Create(ctx, req)
	if err != nil {
		return "", err
	}
	return reference, nil
}

// Confirmation implements BookingUseCase.Confirmation.
func (uc *bookingUseCase) Confirmation(ctx context.Context, reference string) Confirmation {
	if reference == "" {
		return Confirmation{State: StateError, Message: MsgMissingReference}
	}

	record, err := uc.bookings.GetByReference(ctx, reference)
	if err != nil {
		if domain.IsBookingNotFound(err) {
			return Confirmation{State: StateNotFound, Message: MsgBookingNotFound}
		}
		return Confirmation{State: StateError, Message: err.Error()}
	}
	if record == nil {
		return Confirmation{State: StateNotFound, Message: MsgBookingNotFound}
	}

	view := record.View()
	return Confirmation{State: StateSuccess, View: &view}
}

// ListForUser implements BookingUseCase.ListForUser.
func (uc *bookingUseCase) ListForUser(ctx context.Context, sess *session.Session) ([]domain.BookingRecord, error) {
	if sess == nil || sess.User == nil {
		return nil, domain.ErrUnauthenticated
	}
	return uc.bookings.ListByUser(ctx, sess.User.ID)
}

// Ensure bookingUseCase implements BookingUseCase at compile time.
var _ BookingUseCase = (*bookingUseCase)(nil)
