package discussion

import (
	"context"

	"github.com/roundtable/persona"
)

// ResponseGenerator produces one persona's contribution for one turn. It is
// the seam between the coordinator and whatever does the actual thinking: a
// deterministic template for tests and dry runs, or a model-backed adapter
// for real discussions.
//
// prior is the transcript visible to this turn; depending on the coordinator
// configuration it contains either everything generated so far or only the
// completed rounds. Implementations must treat it as read-only.
//
// A returned error fails only this turn: the coordinator records it as a
// failed-turn sentinel and moves on to the next persona.
type ResponseGenerator interface {
	Generate(ctx context.Context, p persona.Persona, topic string, prior *Transcript) (string, error)
}

// GeneratorFunc adapts a plain function to the ResponseGenerator interface.
type GeneratorFunc func(ctx context.Context, p persona.Persona, topic string, prior *Transcript) (string, error)

// Generate implements ResponseGenerator.
func (f GeneratorFunc) Generate(ctx context.Context, p persona.Persona, topic string, prior *Transcript) (string, error) {
	return f(ctx, p, topic, prior)
}
