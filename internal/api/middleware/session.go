package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type sessionContextKey struct{}

// SessionMiddleware assigns every browser an opaque session ID via a
// cookie. The booking flow keys the parked appointment draft on it, so
// the OP card page can find the draft without any account or login.
func SessionMiddleware(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
				sessionID = cookie.Value
			}

			if sessionID == "" {
				sessionID = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionContextKey{}, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext returns the session ID set by SessionMiddleware,
// or an empty string when the middleware did not run.
func SessionIDFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionContextKey{}).(string); ok {
		return sessionID
	}
	return ""
}
