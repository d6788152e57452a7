package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Context keys for the authenticated identity resolved by AuthRequired.
const (
	ctxUserID   = "user_id"
	ctxUsername = "username"
)

// AuthRequired gates content routes. Requests without a logged-in session are
// redirected to the login form; otherwise the session identity is copied into
// the request context so handlers never touch session state directly.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		userID, ok := session.Get("user_id").(uint)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ctxUserID, userID)
		if name, ok := session.Get("username").(string); ok {
			c.Set(ctxUsername, name)
		}

		c.Next()
	}
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint(ctxUserID)
}

func currentUsername(c *gin.Context) string {
	return c.GetString(ctxUsername)
}
