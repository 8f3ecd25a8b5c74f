package llm

import (
	"context"

	"github.com/go-kratos/blades"
	"github.com/go-kratos/blades/contrib/openai"

	"github.com/roundtable/config"
)

type openaiBuilder struct {
	baseURL string
	apiKey  string
}

func newOpenAIBuilder() ModelBuilder {
	return &openaiBuilder{
		baseURL: "https://api.openai.com/v1",
		apiKey:  "OPENAI_API_KEY",
	}
}

func (b *openaiBuilder) Build(ctx context.Context, cfg *config.PersonaLLMConfig) (blades.ModelProvider, error) {
	apiKey, err := resolveAPIKey(cfg, b.apiKey)
	if err != nil {
		return nil, err
	}

	opts := openai.Config{
		APIKey:  apiKey,
		BaseURL: resolveBaseURL(cfg, b.baseURL),
	}
	opts.MaxOutputTokens = int64(*cfg.MaxTokens)
	opts.Temperature = *cfg.Temperature

	return openai.NewModel(cfg.Model, opts), nil
}
