package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-kratos/blades"
	"github.com/samber/lo"

	"github.com/roundtable/discussion"
	"github.com/roundtable/internal/consts"
	"github.com/roundtable/internal/llm"
	"github.com/roundtable/persona"
)

// ModelGeneratorConfig wires the model-backed generator.
type ModelGeneratorConfig struct {
	Registry *persona.Registry
	Models   *llm.ModelRegistry
}

// ModelGenerator is the real ResponseGenerator: every persona runs as its
// own blades agent, and each turn becomes one runner invocation whose prompt
// carries the topic and the transcript visible to that turn.
type ModelGenerator struct {
	registry *persona.Registry
	runners  map[string]*blades.Runner
}

// NewModelGenerator builds one agent and runner per registered persona.
func NewModelGenerator(cfg ModelGeneratorConfig) (*ModelGenerator, error) {
	if cfg.Registry == nil {
		return nil, fmt.Errorf("persona registry is required")
	}
	if cfg.Models == nil {
		return nil, fmt.Errorf("model registry is required")
	}

	runners := make(map[string]*blades.Runner, cfg.Registry.Len())
	for _, p := range cfg.Registry.List() {
		model, err := cfg.Models.Get(p.ID)
		if err != nil {
			return nil, err
		}

		personaAgent, err := NewPersonaAgent(PersonaAgentConfig{Persona: p, Model: model})
		if err != nil {
			return nil, err
		}

		runners[p.ID] = blades.NewRunner(personaAgent)
		slog.Info("agent.persona.created", "persona", p.ID)
	}

	return &ModelGenerator{
		registry: cfg.Registry,
		runners:  runners,
	}, nil
}

// Generate implements discussion.ResponseGenerator.
func (g *ModelGenerator) Generate(ctx context.Context, p persona.Persona, topic string, prior *discussion.Transcript) (string, error) {
	runner, ok := g.runners[p.ID]
	if !ok {
		return "", fmt.Errorf("no agent for persona %s: %w", p.ID, persona.ErrNotFound)
	}

	round := 1
	for _, t := range prior.Turns {
		if t.Persona == p.ID {
			round++
		}
	}

	prompt, err := consts.BuildTurnPrompt(topic, round, g.transcriptEntries(prior))
	if err != nil {
		return "", fmt.Errorf("build turn prompt: %w", err)
	}

	output, err := runner.Run(ctx, blades.UserMessage(prompt))
	if err != nil {
		return "", fmt.Errorf("persona %s generation: %w", p.ID, err)
	}
	return output.Text(), nil
}

// transcriptEntries projects the visible transcript into prompt entries,
// using display names where the persona is still registered.
func (g *ModelGenerator) transcriptEntries(prior *discussion.Transcript) []consts.TranscriptEntry {
	return lo.Map(prior.Turns, func(t discussion.Turn, _ int) consts.TranscriptEntry {
		speaker := t.Persona
		if p, err := g.registry.Get(t.Persona); err == nil {
			speaker = p.Name
		}
		return consts.TranscriptEntry{
			Speaker: speaker,
			Text:    t.Text,
			Failed:  t.Failed(),
		}
	})
}
