package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hgmendoza/recaudo/internal/auth"
)

// CookieName is the session cookie shared by the API and file routes.
const CookieName = "session"

type sessionKey struct{}

type Sessions struct {
	tokens *auth.Tokens
}

func NewSessions(tokens *auth.Tokens) *Sessions {
	return &Sessions{tokens: tokens}
}

// Authenticate rejects requests without a valid session cookie and puts
// the verified session on the request context.
func (s *Sessions) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}

		sess, err := s.tokens.Verify(cookie.Value)
		if err != nil {
			http.Error(w, "invalid or expired session", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the session stored by Authenticate.
func FromContext(ctx context.Context) (*auth.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(*auth.Session)
	return sess, ok
}

// RequireElevated lets supervisor, gerente and admin through.
func RequireElevated(next http.Handler) http.Handler {
	return requireRole(next, func(r auth.Role) bool { return r.Elevated() })
}

// RequireAdmin lets only admin through.
func RequireAdmin(next http.Handler) http.Handler {
	return requireRole(next, func(r auth.Role) bool { return r.IsAdmin() })
}

func requireRole(next http.Handler, allowed func(auth.Role) bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := FromContext(r.Context())
		if !ok || !allowed(sess.Role) {
			http.Error(w, "insufficient permissions", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// LimitBody caps the request body. Oversized multipart bodies surface as
// a 413 instead of a generic parse failure.
func LimitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// TooLarge writes the friendly 413 used when MaxBytesReader trips.
func TooLarge(w http.ResponseWriter, maxBytes int64) {
	http.Error(w,
		fmt.Sprintf("request too large, limit is %d MB", maxBytes/(1<<20)),
		http.StatusRequestEntityTooLarge)
}
