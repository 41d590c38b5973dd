package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/valleyautoparts/shop-api/auth"
)

// Context/session key holding the authenticated username.
const userKey = "username"

// Username returns the authenticated username set by RequireLogin or
// RequireAPIUser. Empty when the request is anonymous.
func Username(c *gin.Context) string {
	return c.GetString(userKey)
}

// SessionUser reads the username straight from the session cookie. Used by
// pages that render for both anonymous and logged-in visitors.
func SessionUser(c *gin.Context) (string, bool) {
	v := sessions.Default(c).Get(userKey)
	username, ok := v.(string)
	return username, ok && username != ""
}

// Login records the username in the session cookie.
func Login(c *gin.Context, username string) error {
	session := sessions.Default(c)
	session.Set(userKey, username)
	return session.Save()
}

// Logout drops the session user.
func Logout(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(userKey)
	return session.Save()
}

// Flash queues a one-time banner message for the next rendered page.
func Flash(c *gin.Context, msg string) {
	session := sessions.Default(c)
	session.AddFlash(msg)
	_ = session.Save()
}

// PopFlash returns the queued banner messages, if any, and clears them.
// Multiple flashes queued before one render come back as a single banner.
func PopFlash(c *gin.Context) string {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return ""
	}
	_ = session.Save() // reading flashes mutates the session
	msgs := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if msg, ok := f.(string); ok && msg != "" {
			msgs = append(msgs, msg)
		}
	}
	return strings.Join(msgs, " ")
}

// RequireLogin guards server-rendered pages: anonymous visitors are
// redirected to the login page with no error shown.
func RequireLogin(c *gin.Context) {
	username, ok := SessionUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	c.Set(userKey, username)
	c.Next()
}

// RequireAPIUser guards JSON endpoints. It accepts the browser session
// cookie or a bearer token and answers 401 otherwise.
func RequireAPIUser(c *gin.Context) {
	if username, ok := SessionUser(c); ok {
		c.Set(userKey, username)
		c.Next()
		return
	}

	header := c.GetHeader("Authorization")
	if token, found := strings.CutPrefix(header, "Bearer "); found {
		if username, err := auth.ParseToken(token); err == nil {
			c.Set(userKey, username)
			c.Next()
			return
		}
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	c.Abort()
}
