package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
	"unicode/utf8"
)

// GenerateRequest is a single prompt for one task.
type GenerateRequest struct {
	Task   TaskType
	Prompt string
}

type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client sends one prompt and returns one text completion.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// NewClient builds the HTTP client for cfg.Provider.
func NewClient(cfg Config, observer Observer) (Client, error) {
	if observer == nil {
		observer = NoopObserver{}
	}
	hc := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
		},
	}

	base := httpClient{cfg: cfg, http: hc, observer: observer}
	switch cfg.Provider {
	case ProviderGemini:
		return &geminiClient{httpClient: base}, nil
	case ProviderOpenAI:
		return &openAIClient{httpClient: base}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// httpClient carries what both providers share: config, transport and the
// call observer.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// call runs one request with the task timeout applied, classifies its error
// and reports the outcome to the observer.
func (c *httpClient) call(ctx context.Context, task TaskType, do func(ctx context.Context) (text, model string, err error)) (*GenerateResponse, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.TaskTimeout(task))
	defer cancel()

	text, model, err := do(ctx)
	latency := time.Since(start).Milliseconds()
	if model == "" {
		model = c.cfg.Model
	}

	if err != nil {
		switch {
		case ctx.Err() != nil:
			err = ErrTimeout
		case isConnectionError(err):
			err = ErrUnavailable
		}
	}

	c.observer.OnCallComplete(CallEvent{
		Task:      task,
		Provider:  c.cfg.Provider,
		Model:     model,
		LatencyMs: latency,
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	if err != nil {
		return nil, err
	}
	return &GenerateResponse{Text: text, Model: model, LatencyMs: latency}, nil
}

func (c *httpClient) postJSON(ctx context.Context, url string, headers map[string]string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, httpResp.StatusCode, truncate(string(respBody), maxErrorBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrInvalidOutput, err)
	}
	return nil
}

// maxErrorBody bounds how much of an error response ends up in the error text.
const maxErrorBody = 200

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// back off to a rune boundary
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

func (c *httpClient) taskConfig(task TaskType) TaskConfig {
	return c.cfg.Tasks[task]
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrUpstream):
		return "UPSTREAM"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
