package llm

import (
	"context"
	"fmt"
	"strings"
)

// geminiClient talks to the Google Generative Language generateContent API.
type geminiClient struct {
	httpClient
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	ModelVersion string `json:"modelVersion"`
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	tc := c.taskConfig(req.Task)
	body := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: req.Prompt}},
		}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     tc.Temperature,
			MaxOutputTokens: tc.MaxTokens,
		},
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Model)
	headers := map[string]string{"x-goog-api-key": c.cfg.APIKey}

	return c.call(ctx, req.Task, func(ctx context.Context) (string, string, error) {
		var resp geminiResponse
		if err := c.postJSON(ctx, url, headers, body, &resp); err != nil {
			return "", "", err
		}
		if len(resp.Candidates) == 0 {
			return "", "", fmt.Errorf("%w: no candidates in response", ErrInvalidOutput)
		}

		var sb strings.Builder
		for _, p := range resp.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
		return sb.String(), resp.ModelVersion, nil
	})
}
