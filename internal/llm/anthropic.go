package llm

import (
	"context"

	"github.com/go-kratos/blades"
	"github.com/go-kratos/blades/contrib/anthropic"

	"github.com/roundtable/config"
)

type anthropicBuilder struct {
	baseURL string
	apiKey  string
}

func newAnthropicBuilder() ModelBuilder {
	return &anthropicBuilder{
		baseURL: "https://api.anthropic.com",
		apiKey:  "ANTHROPIC_API_KEY",
	}
}

func (b *anthropicBuilder) Build(ctx context.Context, cfg *config.PersonaLLMConfig) (blades.ModelProvider, error) {
	apiKey, err := resolveAPIKey(cfg, b.apiKey)
	if err != nil {
		return nil, err
	}

	opts := anthropic.Config{
		APIKey:  apiKey,
		BaseURL: resolveBaseURL(cfg, b.baseURL),
	}
	opts.MaxOutputTokens = int64(*cfg.MaxTokens)
	opts.Temperature = *cfg.Temperature

	return anthropic.NewModel(cfg.Model, opts), nil
}
