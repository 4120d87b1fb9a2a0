package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kassa/internal/domain"
)

// fakeResolver resolves tokens from a fixed map.
type fakeResolver struct {
	sessions map[string]uint
}

func (f *fakeResolver) Resolve(_ context.Context, token string) (uint, error) {
	userID, ok := f.sessions[token]
	if !ok {
		return 0, domain.ErrNotAuthenticated
	}
	return userID, nil
}

func newGatedRouter(resolver SessionResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireSession(resolver), func(c *gin.Context) {
		c.String(http.StatusOK, "user=%d", c.MustGet(ContextUserKey).(uint))
	})
	return r
}

func TestRequireSession(t *testing.T) {
	resolver := &fakeResolver{sessions: map[string]uint{"good-token": 42}}
	r := newGatedRouter(resolver)

	t.Run("missing cookie redirects to login", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("unknown token redirects to login", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "stale-token"})
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("valid session reaches the handler with its user", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "good-token"})
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user=42", w.Body.String())
	})
}
