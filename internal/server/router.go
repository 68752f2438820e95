package server

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"gen-obras/internal/config"
	"gen-obras/internal/handlers"
	"gen-obras/internal/markdown"
	"gen-obras/internal/middleware"
	"gen-obras/internal/workspace"
	"gen-obras/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionName = "obras_session"

func money(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"money":    money,
		"date":     formatDate,
		"markdown": markdown.ToHTML,
	}
}

func NewRouter(cfg *config.Config, spaces *workspace.Registry, h *handlers.Handler) *gin.Engine {
	r := gin.Default()

	r.StaticFS("/static", http.FS(web.Static()))
	r.SetHTMLTemplate(template.Must(web.Templates(templateFuncs())))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	//
	// AUTH
	//
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth(), middleware.InjectWorkspace(spaces))

	auth.GET("/", handlers.IndexPage)

	//
	// BUDGETS
	//
	auth.GET("/budgets/new", h.ShowNewBudget)
	auth.POST("/budgets", h.CreateBudget)

	//
	// PROJECTS AND SCHEDULES
	//
	auth.GET("/projects", h.ListProjects)
	auth.POST("/projects/approve", h.ApproveProspect)

	//
	// TEAM
	//
	auth.GET("/team", h.ListTeam)
	auth.POST("/team", h.AddMember)
	auth.POST("/team/analyze", h.AnalyzeTeam)

	//
	// ASSISTANT
	//
	auth.GET("/assistant", h.ShowAssistant)
	auth.POST("/assistant", h.Ask)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
