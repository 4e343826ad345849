package api

import (
	"context"
	"net/http"

	"finishing-directory-web/internal/session"
	"finishing-directory-web/internal/store"
)

type sessionCtxKey int

const sessionKey sessionCtxKey = iota

// SessionFrom returns the session attached to the request context, or nil for
// anonymous requests.
func SessionFrom(ctx context.Context) *session.Session {
	s, _ := ctx.Value(sessionKey).(*session.Session)
	return s
}

// WithSession reads the session cookie on every request. When present, the
// session is attached to the context and its bearer token is made available to
// the upstream store, so every outgoing call within the request is
// authenticated without the handlers passing the token around.
func (h *Handler) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s, err := h.sessions.FromRequest(r); err == nil {
			ctx := context.WithValue(r.Context(), sessionKey, s)
			ctx = store.WithToken(ctx, s.Token)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSession gates routes that need any authenticated user.
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFrom(r.Context()) == nil {
			h.redirect(w, r, "/login/company")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole gates a protected section on the session role. Anonymous users
// are sent to the matching login page; a session with the wrong role gets a
// 403 page rather than a redirect loop.
func (h *Handler) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := SessionFrom(r.Context())
			if s == nil {
				h.redirect(w, r, "/login/"+role)
				return
			}
			if s.Role != role {
				h.render(w, http.StatusForbidden, "forbidden.html", errorPage{
					basePage: h.base(w, r, "غير مصرح"),
					Message:  "هذه الصفحة غير متاحة لحسابك",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
