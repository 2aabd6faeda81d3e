package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/airvoyage/flight-booking-gateway/internal/adapter/http/response"
	"github.com/airvoyage/flight-booking-gateway/internal/domain"
	"github.com/airvoyage/flight-booking-gateway/internal/session"
	"github.com/airvoyage/flight-booking-gateway/internal/token"
)

// sessionKey is the context key for the authenticated session.
const sessionKey = "session"

// SessionResolver resolves a token string to a session, restoring it from
// the auth provider when the gateway restarted since the token was issued.
type SessionResolver func(c echo.Context, tokenString string) (*session.Session, error)

// Auth returns middleware that requires a valid session token. The token
// travels as a bearer token in the Authorization header. On success the
// session is stored in the request context for handlers.
func Auth(tokens *token.Manager, store *session.Store, resolve SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := bearerToken(c)
			if tokenString == "" {
				return response.Unauthorized(c)
			}

			claims, err := tokens.Parse(tokenString)
			if err != nil {
				if domain.IsSessionExpired(err) {
					return response.SessionExpired(c)
				}
				return response.Unauthorized(c)
			}

			sess := store.Get(claims.SessionID)
			if sess == nil && resolve != nil {
				// Known-good token but no held session: the gateway
				// restarted. Rehydrate from the auth provider.
				sess, err = resolve(c, tokenString)
				if err != nil {
					return response.Unauthorized(c)
				}
			}
			if sess == nil {
				return response.Unauthorized(c)
			}

			c.Set(sessionKey, sess)
			return next(c)
		}
	}
}

// SessionFromContext retrieves the authenticated session from the echo
// context. Returns nil when the request carried no valid session.
func SessionFromContext(c echo.Context) *session.Session {
	if sess, ok := c.Get(sessionKey).(*session.Session); ok {
		return sess
	}
	return nil
}

// SetSession stores a session in the echo context. Exposed for handler tests.
func SetSession(c echo.Context, sess *session.Session) {
	c.Set(sessionKey, sess)
}

// bearerToken extracts the bearer token from the Authorization header.
func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return auth[len(prefix):]
	}
	return ""
}
