package handlers

import (
	"log"
	"net/http"
	"strings"

	"gen-obras/internal/llm"
	"gen-obras/internal/middleware"
	"gen-obras/internal/models"

	"github.com/gin-gonic/gin"
)

type memberForm struct {
	Name string
	Role string
	Rate string
}

func (h *Handler) ListTeam(c *gin.Context) {
	renderTeam(c, http.StatusOK, gin.H{})
}

func (h *Handler) AddMember(c *gin.Context) {
	form := memberForm{
		Name: strings.TrimSpace(c.PostForm("name")),
		Role: c.PostForm("role"),
		Rate: strings.TrimSpace(c.PostForm("rate")),
	}

	if form.Name == "" {
		renderTeam(c, http.StatusBadRequest, gin.H{"form": form, "error": "Enter the worker name"})
		return
	}
	role := models.WorkerRole(form.Role)
	if !role.Valid() {
		renderTeam(c, http.StatusBadRequest, gin.H{"form": form, "error": "Invalid role"})
		return
	}
	var rate float64
	if form.Rate != "" {
		v, err := parseNumber(form.Rate)
		if err != nil || v < 0 {
			renderTeam(c, http.StatusBadRequest, gin.H{"form": form, "error": "Daily rate must be a number of at least 0"})
			return
		}
		rate = v
	}

	middleware.CurrentWorkspace(c).AddMember(models.TeamMember{
		Name:      form.Name,
		Role:      role,
		DailyRate: rate,
	})

	addFlash(c, flashSuccess, "Added!")
	c.Redirect(http.StatusFound, "/team")
}

// AnalyzeTeam shows the assistant's productivity and cost review of the
// whole roster.
func (h *Handler) AnalyzeTeam(c *gin.Context) {
	team := middleware.CurrentWorkspace(c).Team()
	if len(team) == 0 {
		renderTeam(c, http.StatusBadRequest, gin.H{"analysisError": "Register your team first."})
		return
	}

	analysis, err := h.ai.AnalyzeTeam(c.Request.Context(), team)
	if err != nil {
		log.Printf("team analysis failed: %v", err)
		renderTeam(c, http.StatusBadGateway, gin.H{"analysisError": "AI error: " + llm.Summary(err)})
		return
	}

	renderTeam(c, http.StatusOK, gin.H{"analysis": analysis})
}

func renderTeam(c *gin.Context, status int, data gin.H) {
	data["Page"] = "team"
	data["Team"] = middleware.CurrentWorkspace(c).Team()
	data["Roles"] = models.WorkerRoles
	if _, ok := data["form"]; !ok {
		data["form"] = memberForm{Role: string(models.RoleMason)}
	}
	render(c, status, "team.html", data)
}
