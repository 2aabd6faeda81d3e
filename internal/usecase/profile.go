package usecase

import (
	"context"

	"github.com/airvoyage/flight-booking-gateway/internal/domain"
	"github.com/airvoyage/flight-booking-gateway/internal/session"
)

// ProfileUseCase reads and saves the signed-in user's profile.
type ProfileUseCase interface {
	// Get fetches the session user's stored profile.
	Get(ctx context.Context, sess *session.Session) (*domain.User, error)

	// Save sends the full form snapshot and, on success, replaces the session
	// user wholesale with the server-confirmed object.
	Save(ctx context.Context, sess *session.Session, form domain.ProfileForm) (*domain.User, error)
}

// profileUseCase implements ProfileUseCase.
type profileUseCase struct {
	users domain.UserService
	store *session.Store
}

// NewProfileUseCase creates a ProfileUseCase backed by the given user service
// and session store.
func NewProfileUseCase(users domain.UserService, store *session.Store) ProfileUseCase {
	return &profileUseCase{users: users, store: store}
}

// Get implements ProfileUseCase.Get.
func (uc *profileUseCase) Get(ctx context.Context, sess *session.Session) (*domain.User, error) {
	if sess == nil || sess.User == nil {
		return nil, domain.ErrUnauthenticated
	}
	return uc.users.Get(ctx, sess.User.ID)
}

// Save implements ProfileUseCase.Save.
func (uc *profileUseCase) Save(ctx context.Context, sess *session.Session, form domain.ProfileForm) (*domain.User, error) {
	if sess == nil || sess.User == nil {
		return nil, domain.ErrUnauthenticated
	}

	updated, err := uc.users.Update(ctx, sess.User.ID, form)
	if err != nil {
		return nil, err
	}

	uc.store.UpdateUser(sess.ID, updated)
	return updated, nil
}

// Ensure profileUseCase implements ProfileUseCase at compile time.
var _ ProfileUseCase = (*profileUseCase)(nil)

// Editor tracks one profile editing interaction. It holds a working copy of
// the form so that view mode keeps rendering the stored profile while edits
// are in flight: a cancelled edit discards the copy, a failed save keeps both
// the copy and editing mode so the user can correct and retry.
type Editor struct {
	profiles ProfileUseCase
	sess     *session.Session

	editing bool
	form    domain.ProfileForm
}

// NewEditor creates an Editor over the given session.
func NewEditor(profiles ProfileUseCase, sess *session.Session) *Editor {
	return &Editor{profiles: profiles, sess: sess}
}

// IsEditing reports whether an edit is in progress.
func (e *Editor) IsEditing() bool {
	return e.editing
}

// Form returns the working copy of the form.
func (e *Editor) Form() domain.ProfileForm {
	return e.form
}

// BeginEdit enters editing mode, pre-filling the working copy from the
// session user. Calling it while already editing restarts from the stored
// profile.
func (e *Editor) BeginEdit() error {
	if e.sess == nil || e.sess.User == nil {
		return domain.ErrUnauthenticated
	}
	e.form = domain.FormFromUser(e.sess.User)
	e.editing = true
	return nil
}

// SetField mutates the working copy. The stored profile is untouched until
// Save succeeds.
func (e *Editor) SetField(mutate func(*domain.ProfileForm)) {
	if !e.editing {
		return
	}
	mutate(&e.form)
}

// Cancel discards the working copy and leaves editing mode.
func (e *Editor) Cancel() {
	e.editing = false
	e.form = domain.ProfileForm{}
}

// Save sends the working copy. On success the session user is replaced and
// editing mode ends; on failure the form and editing mode are preserved.
func (e *Editor) Save(ctx context.Context) (*domain.User, error) {
	if !e.editing {
		return nil, domain.WrapInvalidRequest("no edit in progress")
	}

	updated, err := e.profiles.Save(ctx, e.sess, e.form)
	if err != nil {
		return nil, err
	}

	e.editing = false
	e.form = domain.ProfileForm{}
	return updated, nil
}
