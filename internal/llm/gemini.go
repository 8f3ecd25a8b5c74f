package llm

import (
	"context"

	"github.com/go-kratos/blades"
	"github.com/go-kratos/blades/contrib/gemini"
	"google.golang.org/genai"

	"github.com/roundtable/config"
)

type geminiBuilder struct {
	apiKey string
}

func newGeminiBuilder() ModelBuilder {
	return &geminiBuilder{
		apiKey: "GEMINI_API_KEY,GOOGLE_API_KEY",
	}
}

func (b *geminiBuilder) Build(ctx context.Context, cfg *config.PersonaLLMConfig) (blades.ModelProvider, error) {
	apiKey, err := resolveAPIKey(cfg, b.apiKey)
	if err != nil {
		return nil, err
	}

	var opts gemini.Config
	opts.ClientConfig = genai.ClientConfig{
		APIKey: apiKey,
	}
	opts.MaxOutputTokens = int32(*cfg.MaxTokens)
	opts.Temperature = float32(*cfg.Temperature)

	return gemini.NewModel(ctx, cfg.Model, opts)
}
