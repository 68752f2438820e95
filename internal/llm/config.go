package llm

import "time"

// Provider selects the wire protocol of the text-generation service.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// TaskType identifies the kind of request sent to the model.
type TaskType string

const (
	TaskSchedule TaskType = "schedule"
	TaskAnalyze  TaskType = "analyze"
	TaskChat     TaskType = "chat"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides Config.TimeoutMs if > 0
}

type Config struct {
	Provider  Provider
	Endpoint  string
	Model     string
	APIKey    string
	TimeoutMs int
	LogCalls  bool
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig targets Gemini; the API key still has to be supplied.
func DefaultConfig() Config {
	return Config{
		Provider:  ProviderGemini,
		Endpoint:  DefaultEndpoint(ProviderGemini),
		Model:     DefaultModel(ProviderGemini),
		TimeoutMs: 60000,
		Tasks: map[TaskType]TaskConfig{
			TaskSchedule: {Temperature: 0.2, MaxTokens: 4096},
			TaskAnalyze:  {Temperature: 0.4, MaxTokens: 2048},
			TaskChat:     {Temperature: 0.5, MaxTokens: 2048},
		},
	}
}

func DefaultEndpoint(p Provider) string {
	switch p {
	case ProviderOpenAI:
		return "https://api.mistral.ai"
	default:
		return "https://generativelanguage.googleapis.com"
	}
}

func DefaultModel(p Provider) string {
	switch p {
	case ProviderOpenAI:
		return "mistral-small-latest"
	default:
		return "gemini-1.5-flash"
	}
}

// TaskTimeout returns the task-specific timeout if set, otherwise the global one.
func (c Config) TaskTimeout(task TaskType) time.Duration {
	ms := c.TimeoutMs
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		ms = tc.TimeoutMs
	}
	return time.Duration(ms) * time.Millisecond
}
