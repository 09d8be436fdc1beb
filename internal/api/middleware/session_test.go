package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftmedhelp/backend/internal/api/middleware"
)

func TestSessionMiddleware(t *testing.T) {
	t.Run("issues a cookie and exposes the ID in context", func(t *testing.T) {
		var seen string
		handler := middleware.SessionMiddleware("smh_session")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.SessionIDFromContext(r.Context())
		}))

		req := httptest.NewRequest("GET", "/api/doctors", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.NotEmpty(t, seen)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "smh_session", cookies[0].Name)
		assert.Equal(t, seen, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("reuses an existing cookie without reissuing", func(t *testing.T) {
		var seen string
		handler := middleware.SessionMiddleware("smh_session")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.SessionIDFromContext(r.Context())
		}))

		req := httptest.NewRequest("GET", "/api/doctors", nil)
		req.AddCookie(&http.Cookie{Name: "smh_session", Value: "existing-session"})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "existing-session", seen)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("context without the middleware yields an empty ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/doctors", nil)
		assert.Empty(t, middleware.SessionIDFromContext(req.Context()))
	})
}
