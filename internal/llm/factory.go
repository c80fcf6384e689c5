package llm

import (
	"context"
	"fmt"

	"github.com/danoh/steptutor/internal/docstore"
)

// NewProvider creates a Provider from configuration. One provider is
// selected per deployment; the result is wrapped with retry and event
// logging middleware, so the caller sees retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, events docstore.EventRepo) (Provider, error) {
	if cfg.Provider == "mock" {
		return NewMockProvider(), nil
	}

	base, err := newBaseProvider(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return WithRetry(WithLogging(base, events), cfg.Retry), nil
}

func newBaseProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		return NewOpenRouterProvider(cfg.OpenRouter)
	}
	return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
}
