package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"kassa/internal/domain"     // Importing domain models
	"kassa/internal/middleware" // Session cookie/context names
	"kassa/internal/store"      // Credential store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// SessionAuthority is the slice of the session manager the auth handlers
// need: opening and closing sessions.
type SessionAuthority interface {
	Issue(ctx context.Context, userID uint) (string, error)
	Revoke(ctx context.Context, token string) error
	TTL() time.Duration
}

// CredentialsForm is the payload of the register and login forms.
type CredentialsForm struct {
	Username string `form:"username" binding:"required"` // Username must be provided
	Password string `form:"password" binding:"required"` // Password must be provided
}

// RegisterPageHandler renders the registration form.
func RegisterPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{"flash": takeFlash(c)})
	}
}

// RegisterHandler creates a new account from the submitted form.
func RegisterHandler(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form CredentialsForm // Bind form request to struct
		if err := c.ShouldBind(&form); err != nil {
			setFlash(c, "Username and password are required.")
			c.Redirect(http.StatusSeeOther, "/register")
			return
		}
		if _, err := users.Register(c.Request.Context(), form.Username, form.Password); err != nil {
			if errors.Is(err, domain.ErrUsernameTaken) {
				setFlash(c, "Username already exists!")
			} else {
				// Store failure, surface a generic notice
				logrus.WithFields(logrus.Fields{
					"username": form.Username, // Attempted username
					"error":    err.Error(),   // Error message
				}).Error("Registration failed")
				setFlash(c, "Registration failed, please try again.")
			}
			c.Redirect(http.StatusSeeOther, "/register")
			return
		}
		logrus.WithFields(logrus.Fields{"username": form.Username}).Info("User registered")
		setFlash(c, "Registration successful! Please log in.")
		c.Redirect(http.StatusSeeOther, "/login")
	}
}

// LoginPageHandler renders the login form.
func LoginPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"flash": takeFlash(c)})
	}
}

// LoginHandler authenticates the form credentials, opens a session and sets
// the session cookie.
func LoginHandler(users *store.UserStore, sessions SessionAuthority) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form CredentialsForm // Bind form request to struct
		if err := c.ShouldBind(&form); err != nil {
			setFlash(c, "Invalid credentials, please try again.")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		userID, err := users.Authenticate(c.Request.Context(), form.Username, form.Password)
		if err != nil {
			// Unknown user and wrong password look identical on purpose
			setFlash(c, "Invalid credentials, please try again.")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		token, err := sessions.Issue(c.Request.Context(), userID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to open session")
			setFlash(c, "Login failed, please try again.")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		// HTTP-only cookie scoped to the whole app, lifetime matches the session
		c.SetCookie(middleware.CookieName, token, int(sessions.TTL().Seconds()), "/", "", false, true)
		logrus.WithFields(logrus.Fields{"user_id": userID}).Info("User logged in")
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// LogoutHandler revokes the current session, clears the cookie and sends the
// user back to the login page.
func LogoutHandler(sessions SessionAuthority) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(middleware.CookieName); err == nil {
			_ = sessions.Revoke(c.Request.Context(), token) // Best effort, cookie is cleared regardless
		}
		c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true) // Expire the cookie
		c.Redirect(http.StatusSeeOther, "/login")
	}
}
