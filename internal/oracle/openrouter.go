package oracle

import "fmt"

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider rides the OpenAI-compatible API OpenRouter
// exposes, so it embeds the OpenAI provider wholesale. Model names
// pass through untouched; OpenRouter's IDs are vendor-prefixed and
// the alias table would only get in the way.
type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing OpenRouter API key")
	}
	base := cfg.BaseURL
	if base == "" {
		base = openRouterBaseURL
	}
	inner, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: base,
	})
	if err != nil {
		return nil, err
	}
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
