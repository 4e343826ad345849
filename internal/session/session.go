// Package session manages the browser session: a signed cookie carrying the
// upstream bearer token, user id, role and username. The values are always
// written together on login and cleared together on logout or an unauthorized
// upstream response, so a session is never partially populated.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session is the authenticated identity read from a valid cookie.
type Session struct {
	Token    string
	UserID   int64
	Role     string
	Username string
}

// ErrNoSession is returned when the request carries no usable session cookie.
// A missing, expired or tampered cookie all read as anonymous.
var ErrNoSession = errors.New("no session")

type claims struct {
	Token    string `json:"tok"`
	UserID   int64  `json:"uid"`
	Role     string `json:"role"`
	Username string `json:"uname"`
	jwt.RegisteredClaims
}

// Manager issues, reads and clears session cookies. The cookie value is an
// HS256 JWT so the stored values cannot be altered client-side.
type Manager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
}

// NewManager builds a Manager. secure controls the cookie Secure attribute
// (off for local development over plain HTTP).
func NewManager(secret, cookieName string, ttl time.Duration, secure bool) *Manager {
	return &Manager{secret: []byte(secret), cookieName: cookieName, ttl: ttl, secure: secure}
}

// Issue writes the session cookie for the given identity.
func (m *Manager) Issue(w http.ResponseWriter, s Session) error {
	now := time.Now()
	c := claims{
		Token:    s.Token,
		UserID:   s.UserID,
		Role:     s.Role,
		Username: s.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// FromRequest reads and verifies the session cookie. Any verification failure
// is reported as ErrNoSession: the caller treats the request as anonymous.
func (m *Manager) FromRequest(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}
	var c claims
	token, err := jwt.ParseWithClaims(cookie.Value, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid || c.Token == "" {
		return nil, ErrNoSession
	}
	return &Session{
		Token:    c.Token,
		UserID:   c.UserID,
		Role:     c.Role,
		Username: c.Username,
	}, nil
}

// Clear expires the session cookie. No upstream call is made; the bearer
// token simply stops being presented.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
