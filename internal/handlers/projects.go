package handlers

import (
	"errors"
	"log"
	"net/http"

	"gen-obras/internal/middleware"
	"gen-obras/internal/models"
	"gen-obras/internal/workspace"

	"github.com/gin-gonic/gin"
)

type projectView struct {
	models.Prospect
	Items    []models.LineItem
	Schedule []models.Task
}

func (v projectView) HasSchedule() bool {
	return len(v.Schedule) > 0
}

func withSchedules(ws *workspace.Workspace, ps []models.Prospect) []projectView {
	views := make([]projectView, 0, len(ps))
	for _, p := range ps {
		tasks, _ := ws.Schedule(p.ID)
		views = append(views, projectView{Prospect: p, Items: ws.Items(p.ID), Schedule: tasks})
	}
	return views
}

//
// PROJECTS & SCHEDULES
//

func (h *Handler) ListProjects(c *gin.Context) {
	tab := c.Query("tab")
	if tab != "active" {
		tab = "negotiating"
	}

	renderProjects(c, http.StatusOK, tab, "")
}

func renderProjects(c *gin.Context, status int, tab, msg string) {
	ws := middleware.CurrentWorkspace(c)
	render(c, status, "projects_list.html", gin.H{
		"Page":        "projects",
		"Tab":         tab,
		"Negotiating": withSchedules(ws, ws.Negotiating()),
		"Active":      withSchedules(ws, ws.Active()),
		"error":       msg,
	})
}

// ApproveProspect starts construction on a prospect. Approving an active
// project again changes nothing.
func (h *Handler) ApproveProspect(c *gin.Context) {
	id := c.PostForm("id")
	ws := middleware.CurrentWorkspace(c)

	p, err := ws.Approve(id)
	switch {
	case errors.Is(err, workspace.ErrNotFound):
		renderProjects(c, http.StatusNotFound, "negotiating", "Prospect not found")
		return
	case errors.Is(err, workspace.ErrAlreadyApproved):
		addFlash(c, flashInfo, p.Project+" is already in progress.")
	case err != nil:
		renderProjects(c, http.StatusInternalServerError, "negotiating", "Could not approve prospect")
		return
	default:
		log.Printf("prospect %s approved", p.ID)
		addFlash(c, flashSuccess, p.Project+" approved. Construction started.")
	}

	c.Redirect(http.StatusFound, "/projects?tab=active")
}
