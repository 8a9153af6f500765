package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/medisync/healthcare-portal/internal/core/domain"
	"github.com/medisync/healthcare-portal/internal/core/ports"
)

// Context keys set by the Session middleware.
const (
	ContextIdentity  = "identity"
	ContextSessionID = "session_id"
	// ContextSessionStale marks a request whose session could not be read
	// because the store is unreachable. The guard renders a retry
	// placeholder instead of bouncing the user to the login page.
	ContextSessionStale = "session_stale"
)

// CookieCodec signs and verifies the session cookie. The cookie value is an
// HS256 JWT carrying only the session ID; the identity itself stays
// server-side.
type CookieCodec struct {
	name   string
	secret []byte
	ttl    time.Duration
}

func NewCookieCodec(name, secret string, ttl time.Duration) *CookieCodec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CookieCodec{name: name, secret: []byte(secret), ttl: ttl}
}

func (cc *CookieCodec) Name() string { return cc.name }

// Issue mints the session cookie for sid.
func (cc *CookieCodec) Issue(sid string) (*http.Cookie, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(cc.ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cc.secret)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     cc.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cc.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Expire returns a cookie that deletes the session cookie client-side.
func (cc *CookieCodec) Expire() *http.Cookie {
	return &http.Cookie{
		Name:     cc.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Decode extracts the session ID from the request cookie. Missing, expired
// or tampered cookies read as "no session".
func (cc *CookieCodec) Decode(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(cc.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return cc.secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	sid, _ := claims["sid"].(string)
	return sid, sid != ""
}

// Session resolves the request's session cookie into an identity and stashes
// it in the echo context for the guard and handlers downstream. Requests
// without a valid session pass through anonymously.
func Session(gateway ports.AuthGateway, codec *CookieCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, ok := codec.Decode(c)
			if !ok {
				return next(c)
			}

			identity, err := gateway.Resolve(c.Request().Context(), sid)
			switch {
			case err == nil:
				c.Set(ContextIdentity, identity)
				c.Set(ContextSessionID, sid)
			case errors.Is(err, domain.ErrSessionUnavailable):
				c.Set(ContextSessionStale, true)
			}
			// domain.ErrNoSession falls through: the slot is gone, the
			// request is anonymous.
			return next(c)
		}
	}
}

// Identity returns the authenticated identity stashed by Session, if any.
func Identity(c echo.Context) (*domain.Identity, bool) {
	identity, ok := c.Get(ContextIdentity).(*domain.Identity)
	return identity, ok && identity != nil
}

// SessionID returns the session ID stashed by Session, if any.
func SessionID(c echo.Context) (string, bool) {
	sid, ok := c.Get(ContextSessionID).(string)
	return sid, ok && sid != ""
}
