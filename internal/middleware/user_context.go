package middleware

import (
	"log"

	"gen-obras/internal/workspace"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxWorkspace = "Workspace"

// InjectWorkspace attaches the session's workspace to the request. A session
// whose workspace no longer exists (restart, eviction) starts over with an
// empty one.
func InjectWorkspace(reg *workspace.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		id, _ := sess.Get(KeyWorkspaceID).(string)
		if id == "" {
			id = uuid.NewString()
			sess.Set(KeyWorkspaceID, id)
			_ = sess.Save()
		}

		ws, ok := reg.Lookup(id)
		if !ok {
			log.Printf("workspace %s not found, starting a new one", id)
			ws = reg.Open(id)
		}
		c.Set(ctxWorkspace, ws)

		c.Next()
	}
}

// CurrentWorkspace returns the workspace set by InjectWorkspace.
func CurrentWorkspace(c *gin.Context) *workspace.Workspace {
	if v, ok := c.Get(ctxWorkspace); ok {
		if ws, ok := v.(*workspace.Workspace); ok {
			return ws
		}
	}
	return nil
}
