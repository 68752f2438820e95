package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// session keys
const (
	KeyAuthenticated = "authenticated"
	KeyUsername      = "username"
	KeyWorkspaceID   = "workspace_id"
)

func IsAuthenticated(sess sessions.Session) bool {
	ok, _ := sess.Get(KeyAuthenticated).(bool)
	return ok
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if !IsAuthenticated(sess) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
