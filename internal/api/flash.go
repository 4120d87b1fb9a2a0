package api

import "github.com/gin-gonic/gin"

// Name of the one-shot notice cookie set on redirects.
const flashCookie = "flash"

// setFlash queues a notice for the next rendered page. Gin escapes the
// cookie value, so arbitrary message text is safe here.
func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, msg, 60, "/", "", false, true)
}

// takeFlash returns the pending notice, if any, and clears it.
func takeFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true) // Expire the cookie
	return msg
}
