// Package token issues and verifies the signed session tokens handed to
// clients at sign-in.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/airvoyage/flight-booking-gateway/internal/domain"
	"github.com/airvoyage/flight-booking-gateway/internal/infrastructure/timeutil"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 24 * time.Hour

// Claims are the verified contents of a session token.
type Claims struct {
	// SessionID is the session store key.
	SessionID string

	// UserID is the auth provider's user identifier.
	UserID string
}

// Manager signs and parses session tokens with an HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
	clock  timeutil.Clock
}

// NewManager creates a Manager. A zero ttl falls back to DefaultTTL.
func NewManager(secret string, ttl time.Duration, clock timeutil.Clock) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
	}
}

// Issue signs a token carrying the session and user IDs.
func (m *Manager) Issue(sessionID, userID string) (string, error) {
	now := m.clock.Now()
	claims := jwt.MapClaims{
		"sid": sessionID,
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies a token and extracts its claims.
// An expired token returns an error wrapping domain.ErrSessionExpired; any
// other verification failure wraps domain.ErrUnauthenticated.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.clock.Now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", domain.ErrSessionExpired)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("%w: malformed claims", domain.ErrUnauthenticated)
	}

	sid, _ := claims["sid"].(string)
	sub, _ := claims["sub"].(string)
	if sid == "" || sub == "" {
		return nil, fmt.Errorf("%w: missing session claims", domain.ErrUnauthenticated)
	}

	return &Claims{SessionID: sid, UserID: sub}, nil
}
