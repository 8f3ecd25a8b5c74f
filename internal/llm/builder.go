package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-kratos/blades"

	"github.com/roundtable/config"
)

// ModelBuilder builds a provider-specific blades.ModelProvider from a
// persona's LLM configuration.
type ModelBuilder interface {
	Build(ctx context.Context, cfg *config.PersonaLLMConfig) (blades.ModelProvider, error)
}

// resolveAPIKey returns the configured key, or falls back to the given
// comma-separated list of environment variable names.
func resolveAPIKey(cfg *config.PersonaLLMConfig, envKeys string) (string, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		for _, k := range strings.Split(envKeys, ",") {
			k = strings.TrimSpace(k)
			if k == "" {
				continue
			}
			apiKey = strings.TrimSpace(os.Getenv(k))
			if apiKey != "" {
				break
			}
		}
	}
	if apiKey == "" {
		return "", fmt.Errorf("%s api key not configured (api_key or %s)", cfg.Provider, envKeys)
	}
	return apiKey, nil
}

// resolveBaseURL returns the configured base URL or the provider default.
func resolveBaseURL(cfg *config.PersonaLLMConfig, defaultURL string) string {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return defaultURL
	}
	return cfg.BaseURL
}
