package oracle

import (
	"fmt"
	"os"
	"time"
)

// Config selects and tunes the oracle backend.
type Config struct {
	// Provider picks the backend: "anthropic", "openai", "gemini",
	// "openrouter", or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single oracle call including its retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string // alias ("haiku", "sonnet", "opus") or a full model ID
}

type OpenAIConfig struct {
	APIKey  string
	Model   string // alias ("mini", "4o") or a full model ID
	BaseURL string // optional override for OpenAI-compatible APIs
}

type GeminiConfig struct {
	APIKey string
	Model  string // alias ("flash", "pro") or a full model ID
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string // vendor-prefixed OpenRouter model ID
	BaseURL string
}

// RetryConfig tunes the transient-failure retry loop.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the stock tuning: Anthropic with the cheap
// model, three attempts, thirty-second deadline.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "haiku"},
		OpenAI:     OpenAIConfig{Model: "mini"},
		Gemini:     GeminiConfig{Model: "flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv reads SOCRA_-prefixed variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setenv := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setenv(&cfg.Provider, "SOCRA_ORACLE_PROVIDER")
	setenv(&cfg.Anthropic.APIKey, "SOCRA_ANTHROPIC_API_KEY")
	setenv(&cfg.Anthropic.Model, "SOCRA_ANTHROPIC_MODEL")
	setenv(&cfg.OpenAI.APIKey, "SOCRA_OPENAI_API_KEY")
	setenv(&cfg.OpenAI.Model, "SOCRA_OPENAI_MODEL")
	setenv(&cfg.OpenAI.BaseURL, "SOCRA_OPENAI_BASE_URL")
	setenv(&cfg.Gemini.APIKey, "SOCRA_GEMINI_API_KEY")
	setenv(&cfg.Gemini.Model, "SOCRA_GEMINI_MODEL")
	setenv(&cfg.OpenRouter.APIKey, "SOCRA_OPENROUTER_API_KEY")
	setenv(&cfg.OpenRouter.Model, "SOCRA_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig probes the vendors' standard key variables, in the
// order anthropic, openai, gemini, openrouter, and returns a config
// for the first one set. ok is false when none is.
func DiscoverConfig() (cfg Config, ok bool) {
	cfg = DefaultConfig()

	probes := []struct {
		env      string
		provider string
		key      *string
	}{
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if v := os.Getenv(p.env); v != "" {
			cfg.Provider = p.provider
			*p.key = v
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks the selected provider has the key it needs.
func (c Config) Validate() error {
	required := map[string]struct {
		key string
		env string
	}{
		"anthropic":  {c.Anthropic.APIKey, "SOCRA_ANTHROPIC_API_KEY"},
		"openai":     {c.OpenAI.APIKey, "SOCRA_OPENAI_API_KEY"},
		"gemini":     {c.Gemini.APIKey, "SOCRA_GEMINI_API_KEY"},
		"openrouter": {c.OpenRouter.APIKey, "SOCRA_OPENROUTER_API_KEY"},
	}

	if c.Provider == "mock" {
		return nil
	}
	req, known := required[c.Provider]
	if !known {
		return fmt.Errorf("unknown oracle provider: %q", c.Provider)
	}
	if req.key == "" {
		return fmt.Errorf("%s is required for the %s provider", req.env, c.Provider)
	}
	return nil
}
