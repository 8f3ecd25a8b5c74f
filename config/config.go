package config

import (
	"fmt"

	"github.com/roundtable/internal/consts"
	"github.com/roundtable/persona"
)

// Config is the root configuration structure.
type Config struct {
	App        AppConfig        `toml:"app"`
	Log        LogConfig        `toml:"log"`
	Discussion DiscussionConfig `toml:"discussion" validate:"required"`
	// LLM is the fallback model configuration for personas without their
	// own [personas.llm] block.
	LLM      PersonaLLMConfig `toml:"llm" validate:"-"`
	Personas []PersonaConfig  `toml:"personas" validate:"dive"`
}

// AppConfig holds application-wide settings.
type AppConfig struct {
	Name  string `toml:"name" validate:"required"`
	Topic string `toml:"topic"`
}

// LogConfig controls the slog setup.
type LogConfig struct {
	Level  string `toml:"level" validate:"required,oneof=debug info warn error"`
	Format string `toml:"format" validate:"required,oneof=text json"`
	Output string `toml:"output"`
}

// DiscussionConfig controls the coordinator.
type DiscussionConfig struct {
	Rounds int `toml:"rounds" validate:"min=1"`
	// IndependentRounds makes personas respond without seeing the other
	// statements of the current round.
	IndependentRounds bool `toml:"independent_rounds"`
}

// PersonaConfig defines one participant. Personas are a TOML array, not a
// table, because their order is the speaking order within every round.
type PersonaConfig struct {
	ID        string           `toml:"id" validate:"required"`
	Name      string           `toml:"name"`
	Focus     []string         `toml:"focus"`
	Directive string           `toml:"directive"`
	LLM       PersonaLLMConfig `toml:"llm" validate:"-"`
}

// PersonaLLMConfig selects and tunes the model backend for one persona.
// Validation tags are enforced by the llm factory, not at config load time,
// so template-only runs never require provider settings.
type PersonaLLMConfig struct {
	Provider    string   `toml:"provider" validate:"required,oneof=openai anthropic gemini"`
	Model       string   `toml:"model" validate:"required"`
	APIKey      string   `toml:"api_key"`
	BaseURL     string   `toml:"base_url"`
	MaxTokens   *int     `toml:"max_tokens"`
	Temperature *float64 `toml:"temperature"`
}

// Default returns the configuration used when no config file exists: the
// builtin personas, three rounds, text logging at info.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:  "roundtable",
			Topic: consts.DefaultTopic,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Discussion: DiscussionConfig{
			Rounds: consts.DefaultRounds,
		},
	}
}

// LLMFor returns the model configuration for a persona: its own block when
// one names a provider, the top-level [llm] fallback otherwise.
func (c *Config) LLMFor(id string) PersonaLLMConfig {
	if pc, err := c.GetPersonaConfig(id); err == nil && pc.LLM.Provider != "" {
		return pc.LLM
	}
	return c.LLM
}

// GetPersonaConfig returns the configuration block for the given persona id.
func (c *Config) GetPersonaConfig(id string) (*PersonaConfig, error) {
	for i := range c.Personas {
		if c.Personas[i].ID == id {
			return &c.Personas[i], nil
		}
	}
	return nil, fmt.Errorf("persona config %s not found", id)
}

// PersonaList converts the configured personas to registry entries. When no
// personas are configured the builtin five are used.
func (c *Config) PersonaList() []persona.Persona {
	if len(c.Personas) == 0 {
		return persona.Builtin()
	}
	out := make([]persona.Persona, 0, len(c.Personas))
	for _, pc := range c.Personas {
		out = append(out, persona.Persona{
			ID:        pc.ID,
			Name:      pc.Name,
			Focus:     pc.Focus,
			Directive: pc.Directive,
		})
	}
	return out
}
