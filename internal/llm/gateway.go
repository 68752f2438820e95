package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"gen-obras/internal/models"
)

// Gateway is the only component that talks to the model. It composes the
// prompts and, for schedules, parses the reply.
type Gateway struct {
	client Client
}

func NewGateway(client Client) *Gateway {
	return &Gateway{client: client}
}

// GenerateSchedule asks the model to turn budget items into an ordered
// execution plan. On any failure it returns an empty, non-nil task list
// together with the reason.
func (g *Gateway) GenerateSchedule(ctx context.Context, project string, items []models.LineItem) ([]models.Task, error) {
	serialized, err := json.Marshal(items)
	if err != nil {
		return []models.Task{}, fmt.Errorf("serializing items: %w", err)
	}

	resp, err := g.client.Generate(ctx, GenerateRequest{
		Task:   TaskSchedule,
		Prompt: schedulePrompt(project, string(serialized)),
	})
	if err != nil {
		return []models.Task{}, err
	}

	tasks, err := ParseSchedule(resp.Text)
	if err != nil {
		return []models.Task{}, err
	}
	return tasks, nil
}

// AnalyzeTeam returns the model's productivity and cost review of the roster
// verbatim.
func (g *Gateway) AnalyzeTeam(ctx context.Context, team []models.TeamMember) (string, error) {
	serialized, err := json.Marshal(team)
	if err != nil {
		return "", fmt.Errorf("serializing team: %w", err)
	}

	resp, err := g.client.Generate(ctx, GenerateRequest{
		Task:   TaskAnalyze,
		Prompt: analyzePrompt(string(serialized)),
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Answer replies to a free-text question given a serialized snapshot of the
// current projects and team.
func (g *Gateway) Answer(ctx context.Context, contextText, question string) (string, error) {
	resp, err := g.client.Generate(ctx, GenerateRequest{
		Task:   TaskChat,
		Prompt: chatPrompt(contextText, question),
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
