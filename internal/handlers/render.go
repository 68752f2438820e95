package handlers

import (
	"log"

	"gen-obras/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// flash kinds
const (
	flashSuccess = "success"
	flashInfo    = "info"
	flashError   = "error"
)

// render wraps c.HTML: it passes the logged-in username and any pending
// flash messages to every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	sess := sessions.Default(c)
	if name, ok := sess.Get(middleware.KeyUsername).(string); ok {
		data["CurrentUsername"] = name
	}

	flashes := map[string][]string{}
	for _, kind := range []string{flashSuccess, flashInfo, flashError} {
		if msgs := flashStrings(sess.Flashes(kind)); len(msgs) > 0 {
			flashes[kind] = msgs
		}
	}
	if len(flashes) > 0 {
		data["Flashes"] = flashes
		if err := sess.Save(); err != nil {
			log.Printf("session save failed: %v", err)
		}
	}

	c.HTML(status, tmpl, data)
}

func addFlash(c *gin.Context, kind, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, kind)
	if err := sess.Save(); err != nil {
		log.Printf("session save failed, %s flash dropped: %v", kind, err)
	}
}

func flashStrings(raw []interface{}) []string {
	var out []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
