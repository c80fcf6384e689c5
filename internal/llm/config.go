package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "openai", "anthropic", "gemini", "openrouter", "mock"
	Provider string

	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout is the maximum duration for a single LLM request
	// (including retries). Default: 60s.
	Timeout time.Duration
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenRouter or compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. OpenAI is the
// default provider because the embedding pipeline requires an OpenAI
// key anyway.
func DefaultConfig() Config {
	return Config{
		Provider: "openai",
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. STEPTUTOR_-prefixed variables win over
// the bare provider keys (OPENAI_API_KEY etc).
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setEnv(&cfg.Provider, "STEPTUTOR_LLM_PROVIDER")

	cfg.OpenAI.APIKey = firstEnv("STEPTUTOR_OPENAI_API_KEY", "OPENAI_API_KEY")
	setEnv(&cfg.OpenAI.Model, "STEPTUTOR_OPENAI_MODEL")
	setEnv(&cfg.OpenAI.BaseURL, "STEPTUTOR_OPENAI_BASE_URL")

	cfg.Anthropic.APIKey = firstEnv("STEPTUTOR_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	setEnv(&cfg.Anthropic.Model, "STEPTUTOR_ANTHROPIC_MODEL")

	cfg.Gemini.APIKey = firstEnv("STEPTUTOR_GEMINI_API_KEY", "GEMINI_API_KEY")
	setEnv(&cfg.Gemini.Model, "STEPTUTOR_GEMINI_MODEL")

	cfg.OpenRouter.APIKey = firstEnv("STEPTUTOR_OPENROUTER_API_KEY", "OPENROUTER_API_KEY")
	setEnv(&cfg.OpenRouter.Model, "STEPTUTOR_OPENROUTER_MODEL")

	return cfg
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	keys := map[string]string{
		"openai":     c.OpenAI.APIKey,
		"anthropic":  c.Anthropic.APIKey,
		"gemini":     c.Gemini.APIKey,
		"openrouter": c.OpenRouter.APIKey,
	}
	switch key, known := keys[c.Provider]; {
	case c.Provider == "mock":
		return nil
	case !known:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	case key == "":
		return fmt.Errorf("STEPTUTOR_%s_API_KEY is required for the %s provider",
			strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}

func setEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
