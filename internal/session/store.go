// Package session holds the process-wide authenticated session state.
// The store is created in main and passed explicitly to the components that
// need it; its init/teardown is tied to the application lifecycle rather than
// hidden behind a package-level global.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/airvoyage/flight-booking-gateway/internal/domain"
	"github.com/airvoyage/flight-booking-gateway/internal/infrastructure/timeutil"
)

// Session binds a session ID to the signed-in user.
// The user object is replaced wholesale on every update, never mutated in
// place, so concurrent readers can never observe a torn write.
type Session struct {
	// ID is the opaque session identifier carried inside the token.
	ID string

	// User is the signed-in user's identity and profile data.
	User *domain.User

	// CreatedAt is when the session was established.
	CreatedAt time.Time
}

// State describes the store's lifecycle phase.
type State int

// Store lifecycle states. The store starts in Loading while sessions are
// rehydrated from the auth provider, then moves to Ready for the rest of the
// process lifetime.
const (
	Loading State = iota
	Ready
	Closed
)

// Store is the thread-safe holder of all live sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	state    State
	clock    timeutil.Clock
}

// NewStore creates a Store in the Loading state.
// Call Ready once startup rehydration is complete.
func NewStore(clock timeutil.Clock) *Store {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Store{
		sessions: make(map[string]*Session),
		state:    Loading,
		clock:    clock,
	}
}

// Ready marks startup rehydration as complete.
func (s *Store) Ready() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Loading {
		s.state = Ready
	}
}

// State returns the store's current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsLoading reports whether startup rehydration is still in progress.
func (s *Store) IsLoading() bool {
	return s.State() == Loading
}

// Create establishes a new session for the given user and returns it.
func (s *Store) Create(user *domain.User) *Session {
	sess := &Session{
		ID:        uuid.New().String(),
		User:      user,
		CreatedAt: s.clock.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Closed {
		return nil
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Restore re-establishes a session under a known ID, used when a client
// presents a still-valid token after a restart and the user has been
// rehydrated from the auth provider.
func (s *Store) Restore(id string, user *domain.User) *Session {
	sess := &Session{
		ID:        id,
		User:      user,
		CreatedAt: s.clock.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Closed {
		return nil
	}
	s.sessions[id] = sess
	return sess
}

// Get returns the session for the given ID, or nil when absent.
func (s *Store) Get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// UpdateUser replaces the session's user object wholesale. There is no
// partial merge: callers pass the complete server-confirmed user.
// Returns false if the session no longer exists.
func (s *Store) UpdateUser(id string, user *domain.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.sessions[id]
	if !ok {
		return false
	}
	s.sessions[id] = &Session{
		ID:        old.ID,
		User:      user,
		CreatedAt: old.CreatedAt,
	}
	return true
}

// Delete removes the session, ending it. Deleting an unknown ID is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close tears the store down, dropping every session. Used on shutdown.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*Session)
	s.state = Closed
}
