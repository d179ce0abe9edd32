package middleware

import (
	"net/http"

	"babylog/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware reads the session cookie and, when it carries a valid
// token, exposes the numeric user ID to downstream handlers.
func SessionMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		cookie, err := c.Cookie(utils.SessionCookieName)
		if err == nil && cookie != "" {
			if userID, err := utils.ValidateSessionToken(cookie); err == nil {
				c.Set("user_id", userID)
			}
		}
		c.Next()
	}
}

// RequireSession aborts requests with no authenticated user. Page
// navigations are redirected to the login route, everything else gets 401.
func RequireSession() gin.HandlerFunc {

	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			if c.Request.Method == http.MethodGet {
				c.Redirect(http.StatusFound, "/")
			} else {
				utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID is the non-redirecting session lookup.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// SetSessionCookie writes the signed session cookie on login.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(utils.SessionCookieName, token, 7*24*3600, "/", "", false, true)
}

// ClearSessionCookie destroys the session on logout.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)
}
