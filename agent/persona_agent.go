package agent

import (
	"fmt"

	"github.com/go-kratos/blades"

	"github.com/roundtable/internal/consts"
	"github.com/roundtable/persona"
)

// PersonaAgentConfig configures one persona-backed blades agent.
type PersonaAgentConfig struct {
	Persona persona.Persona
	Model   blades.ModelProvider
}

// NewPersonaAgent creates a blades agent whose instruction is derived from
// the persona's focus areas and behavioral directive.
func NewPersonaAgent(cfg PersonaAgentConfig) (blades.Agent, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("model is required for persona %s", cfg.Persona.ID)
	}

	instruction, err := consts.BuildPersonaInstruction(cfg.Persona.Name, cfg.Persona.Focus, cfg.Persona.Directive)
	if err != nil {
		return nil, fmt.Errorf("build instruction for %s: %w", cfg.Persona.ID, err)
	}

	return blades.NewAgent(
		cfg.Persona.ID,
		blades.WithDescription(fmt.Sprintf("%s perspective in planning discussions", cfg.Persona.Name)),
		blades.WithInstruction(instruction),
		blades.WithModel(cfg.Model),
	)
}
