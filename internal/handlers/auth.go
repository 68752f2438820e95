package handlers

import (
	"log"
	"net/http"
	"strings"

	"gen-obras/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	if middleware.IsAuthenticated(sessions.Default(c)) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid form data"})
		return
	}
	form.Username = strings.TrimSpace(form.Username)

	if !h.auth.Authenticate(form.Username, form.Password) {
		log.Printf("failed login for %q", form.Username)
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Incorrect password"})
		return
	}

	sess := sessions.Default(c)
	if old, ok := sess.Get(middleware.KeyWorkspaceID).(string); ok {
		h.spaces.Discard(old)
	}

	id := uuid.NewString()
	h.spaces.Open(id)

	// only the outcome is kept in the session, never the credentials
	sess.Clear()
	sess.Set(middleware.KeyAuthenticated, true)
	sess.Set(middleware.KeyUsername, form.Username)
	sess.Set(middleware.KeyWorkspaceID, id)
	_ = sess.Save()

	log.Printf("user %q logged in, %d open workspaces", form.Username, h.spaces.Len())
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	if id, ok := sess.Get(middleware.KeyWorkspaceID).(string); ok {
		h.spaces.Discard(id)
	}
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
