package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airvoyage/flight-booking-gateway/internal/domain"
	"github.com/airvoyage/flight-booking-gateway/internal/infrastructure/timeutil"
)

func TestManager_IssueAndParse(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	mgr := NewManager("test-secret", time.Hour, clock)

	signed, err := mgr.Issue("sess-1", "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := mgr.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestManager_ParseExpired(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	mgr := NewManager("test-secret", time.Hour, clock)

	signed, err := mgr.Issue("sess-1", "user-1")
	require.NoError(t, err)

	clock.AdvanceHours(2)

	_, err = mgr.Parse(signed)
	assert.True(t, domain.IsSessionExpired(err))
}

func TestManager_ParseWrongSecret(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	issuer := NewManager("secret-a", time.Hour, clock)
	verifier := NewManager("secret-b", time.Hour, clock)

	signed, err := issuer.Issue("sess-1", "user-1")
	require.NoError(t, err)

	_, err = verifier.Parse(signed)
	assert.True(t, domain.IsUnauthenticated(err))
}

func TestManager_ParseGarbage(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour, nil)

	_, err := mgr.Parse("not-a-token")
	assert.True(t, domain.IsUnauthenticated(err))
}

func TestManager_DefaultTTL(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	mgr := NewManager("test-secret", 0, clock)

	signed, err := mgr.Issue("sess-1", "user-1")
	require.NoError(t, err)

	// Still valid just before the default 24h window closes.
	clock.Advance(DefaultTTL - time.Minute)
	_, err = mgr.Parse(signed)
	assert.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = mgr.Parse(signed)
	assert.True(t, domain.IsSessionExpired(err))
}
