package llm

import (
	"context"
	"fmt"
	"strings"
)

// openAIClient talks to any OpenAI-compatible /v1/chat/completions endpoint
// (Mistral, OpenAI, local gateways).
type openAIClient struct {
	httpClient
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *openAIClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	tc := c.taskConfig(req.Task)
	body := chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: req.Prompt}},
		Temperature: tc.Temperature,
		MaxTokens:   tc.MaxTokens,
	}
	url := strings.TrimRight(c.cfg.Endpoint, "/") + "/v1/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	return c.call(ctx, req.Task, func(ctx context.Context) (string, string, error) {
		var resp chatResponse
		if err := c.postJSON(ctx, url, headers, body, &resp); err != nil {
			return "", "", err
		}
		if len(resp.Choices) == 0 {
			return "", "", fmt.Errorf("%w: no choices in response", ErrInvalidOutput)
		}
		return resp.Choices[0].Message.Content, resp.Model, nil
	})
}
