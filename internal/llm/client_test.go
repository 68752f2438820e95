package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(provider Provider, endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Provider = provider
	cfg.Endpoint = endpoint
	cfg.Model = DefaultModel(provider)
	cfg.APIKey = "test-key"
	cfg.TimeoutMs = 2000
	return cfg
}

type recordingObserver struct {
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(e CallEvent) {
	o.events = append(o.events, e)
}

func TestGeminiClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)
		assert.Equal(t, 4096, req.GenerationConfig.MaxOutputTokens)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Hi "},{"text":"there"}]}}],"modelVersion":"gemini-1.5-flash-002"}`))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	client, err := NewClient(testConfig(ProviderGemini, srv.URL), obs)
	require.NoError(t, err)

	resp, err := client.Generate(context.Background(), GenerateRequest{Task: TaskSchedule, Prompt: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "Hi there", resp.Text)
	assert.Equal(t, "gemini-1.5-flash-002", resp.Model)

	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, TaskSchedule, obs.events[0].Task)
}

func TestGeminiClient_Generate_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(ProviderGemini, srv.URL), nil)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), GenerateRequest{Task: TaskChat, Prompt: "x"})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestOpenAIClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "mistral-small-latest", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "question", req.Messages[0].Content)

		w.Write([]byte(`{"model":"mistral-small-latest","choices":[{"message":{"role":"assistant","content":"answer"}}]}`))
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(ProviderOpenAI, srv.URL), nil)
	require.NoError(t, err)

	resp, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, Prompt: "question"})
	require.NoError(t, err)
	assert.Equal(t, "answer", resp.Text)
}

func TestClient_Generate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	client, err := NewClient(testConfig(ProviderGemini, srv.URL), obs)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), GenerateRequest{Task: TaskAnalyze, Prompt: "x"})
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "quota exceeded")

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, "UPSTREAM", obs.events[0].ErrorCode)
}

func TestClient_Generate_UpstreamErrorBodyIsCapped(t *testing.T) {
	page := strings.Repeat("<html>bad gateway</html>", 200)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(page))
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(ProviderOpenAI, srv.URL), nil)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), GenerateRequest{Task: TaskSchedule, Prompt: "x"})
	require.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "status 502")
	assert.NotContains(t, err.Error(), page)
	assert.Less(t, len(err.Error()), len(ErrUpstream.Error())+maxErrorBody+32)
}

func TestClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(ProviderOpenAI, srv.URL)
	cfg.Tasks = map[TaskType]TaskConfig{
		TaskChat: {Temperature: 0.5, MaxTokens: 16, TimeoutMs: 50},
	}

	client, err := NewClient(cfg, nil)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), GenerateRequest{Task: TaskChat, Prompt: "x"})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_Generate_Unavailable(t *testing.T) {
	client, err := NewClient(testConfig(ProviderGemini, "http://127.0.0.1:1"), nil)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), GenerateRequest{Task: TaskChat, Prompt: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(testConfig("smoke-signals", "http://x"), nil)
	assert.Error(t, err)
}

func TestConfig_TaskTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 60*time.Second, cfg.TaskTimeout(TaskChat))

	cfg.Tasks[TaskChat] = TaskConfig{TimeoutMs: 1500}
	assert.Equal(t, 1500*time.Millisecond, cfg.TaskTimeout(TaskChat))
}
