package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin" // Gin web framework
)

// CookieName is the cookie carrying the session token.
const CookieName = "session"

// ContextUserKey is where RequireSession stores the authenticated user ID.
const ContextUserKey = "userID"

// SessionResolver maps a session token to the user it belongs to.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (uint, error)
}

// RequireSession gates every ledger-reading or -mutating route: it resolves
// the session cookie and stores the user ID in the request context. Missing,
// invalid or revoked sessions are redirected to the login page and the
// request never reaches the handler.
func RequireSession(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName) // Read the session cookie
		if err != nil {
			// No cookie, no session
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			// Invalid or revoked session
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Set(ContextUserKey, userID) // Store userID in context
		c.Next()                      // Proceed to the next handler
	}
}
