package oracle

import (
	"context"
	"fmt"
)

// NewProvider builds the configured vendor provider and dresses it in
// the middleware every caller wants: retry outermost, then logging,
// then the vendor client. A nil log skips request event logging.
func NewProvider(ctx context.Context, cfg Config, log RequestLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown oracle provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("build %s provider: %w", cfg.Provider, err)
	}

	if log != nil {
		base = WithLogging(base, log)
	}
	return WithRetry(base, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from SOCRA_-prefixed env vars,
// falling back to discovery of standard API key vars when no explicit
// provider is configured.
func NewProviderFromEnv(ctx context.Context, log RequestLog) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, log)
}
