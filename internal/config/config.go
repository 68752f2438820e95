package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gen-obras/internal/llm"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const defaultSecretsFile = "secrets.toml"

type Config struct {
	ServerPort    string
	SessionSecret string
	SessionTTL    time.Duration

	// Credentials maps usernames to passwords (plaintext or bcrypt).
	Credentials map[string]string

	LLM llm.Config
}

// secrets mirrors the hosting runtime's secrets file:
//
//	GOOGLE_API_KEY = "..."
//	[passwords]
//	davi = "..."
type secrets struct {
	GoogleAPIKey string            `toml:"GOOGLE_API_KEY"`
	LLMAPIKey    string            `toml:"LLM_API_KEY"`
	Passwords    map[string]string `toml:"passwords"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	sec, err := loadSecrets()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    12 * time.Hour,
		Credentials:   map[string]string{},
		LLM:           llm.DefaultConfig(),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is not set")
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("SESSION_TTL: invalid duration %q", v)
		}
		cfg.SessionTTL = d
	}

	for user, pass := range sec.Passwords {
		cfg.Credentials[user] = pass
	}
	users, err := parseUsers(os.Getenv("AUTH_USERS"))
	if err != nil {
		return nil, err
	}
	for user, pass := range users {
		cfg.Credentials[user] = pass
	}
	if len(cfg.Credentials) == 0 {
		return nil, errors.New("no credentials configured: set AUTH_USERS or [passwords] in the secrets file")
	}

	if err := loadLLM(&cfg.LLM, sec); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadLLM(c *llm.Config, sec secrets) error {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.Provider = llm.Provider(strings.ToLower(v))
	}
	switch c.Provider {
	case llm.ProviderGemini, llm.ProviderOpenAI:
	default:
		return fmt.Errorf("LLM_PROVIDER: unknown provider %q", c.Provider)
	}
	c.Endpoint = llm.DefaultEndpoint(c.Provider)
	c.Model = llm.DefaultModel(c.Provider)

	if v := os.Getenv("LLM_ENDPOINT"); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("LLM_TIMEOUT_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("LLM_TIMEOUT_MS: invalid value %q", v)
		}
		c.TimeoutMs = n
	}
	if v := os.Getenv("LLM_LOG_CALLS"); v != "" {
		c.LogCalls, _ = strconv.ParseBool(v)
	}

	// env wins over the secrets file
	for _, key := range []string{os.Getenv("LLM_API_KEY"), os.Getenv("GOOGLE_API_KEY"), sec.LLMAPIKey, sec.GoogleAPIKey} {
		if key != "" {
			c.APIKey = key
			break
		}
	}
	if c.APIKey == "" {
		return errors.New("LLM_API_KEY is not set")
	}
	return nil
}

func loadSecrets() (secrets, error) {
	var sec secrets

	path := os.Getenv("SECRETS_FILE")
	explicit := path != ""
	if !explicit {
		path = defaultSecretsFile
	}

	if _, err := toml.DecodeFile(path, &sec); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return secrets{}, nil
		}
		return secrets{}, fmt.Errorf("reading secrets file %s: %w", path, err)
	}
	return sec, nil
}

// parseUsers reads "user:pass,user2:pass2". Passwords may contain ':'.
func parseUsers(s string) (map[string]string, error) {
	users := map[string]string{}
	if strings.TrimSpace(s) == "" {
		return users, nil
	}
	for _, pair := range strings.Split(s, ",") {
		user, pass, ok := strings.Cut(strings.TrimSpace(pair), ":")
		user = strings.TrimSpace(user)
		if !ok || user == "" || pass == "" {
			return nil, fmt.Errorf("AUTH_USERS: malformed entry %q, want user:password", pair)
		}
		users[user] = pass
	}
	return users, nil
}
