package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"gen-obras/internal/llm"
	"gen-obras/internal/middleware"
	"gen-obras/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowAssistant(c *gin.Context) {
	renderAssistant(c, http.StatusOK, "")
}

// Ask appends the question to the transcript and sends it to the assistant
// together with a snapshot of the active projects and the team. A failed call
// leaves the question in the transcript without a reply.
func (h *Handler) Ask(c *gin.Context) {
	question := strings.TrimSpace(c.PostForm("message"))
	if question == "" {
		c.Redirect(http.StatusFound, "/assistant")
		return
	}

	ws := middleware.CurrentWorkspace(c)
	ws.AppendMessage(models.ChatUser, question)

	snapshot, err := chatContext(ws.Active(), ws.Team())
	if err != nil {
		renderAssistant(c, http.StatusInternalServerError, "Could not build the project context")
		return
	}

	reply, err := h.ai.Answer(c.Request.Context(), snapshot, question)
	if err != nil {
		log.Printf("assistant call failed: %v", err)
		renderAssistant(c, http.StatusBadGateway, "AI error: "+llm.Summary(err))
		return
	}

	ws.AppendMessage(models.ChatAssistant, reply)
	c.Redirect(http.StatusFound, "/assistant")
}

func chatContext(projects []models.Prospect, team []models.TeamMember) (string, error) {
	if projects == nil {
		projects = []models.Prospect{}
	}
	if team == nil {
		team = []models.TeamMember{}
	}

	p, err := json.Marshal(projects)
	if err != nil {
		return "", err
	}
	t, err := json.Marshal(team)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Current projects: %s. Team: %s.", p, t), nil
}

func renderAssistant(c *gin.Context, status int, msg string) {
	render(c, status, "assistant.html", gin.H{
		"Page":       "assistant",
		"Transcript": middleware.CurrentWorkspace(c).Transcript(),
		"error":      msg,
	})
}
