// Package handlers implements the HTML views: login, budget entry, projects
// and schedules, team management and the AI assistant.
package handlers

import (
	"context"

	"gen-obras/internal/models"
	"gen-obras/internal/workspace"
)

// Assistant is the external AI capability. Implemented by llm.Gateway.
type Assistant interface {
	GenerateSchedule(ctx context.Context, project string, items []models.LineItem) ([]models.Task, error)
	AnalyzeTeam(ctx context.Context, team []models.TeamMember) (string, error)
	Answer(ctx context.Context, contextText, question string) (string, error)
}

// Authenticator checks a username/password pair. Implemented by auth.Table.
type Authenticator interface {
	Authenticate(username, password string) bool
}

type Handler struct {
	auth   Authenticator
	ai     Assistant
	spaces *workspace.Registry
}

func New(auth Authenticator, ai Assistant, spaces *workspace.Registry) *Handler {
	return &Handler{auth: auth, ai: ai, spaces: spaces}
}
