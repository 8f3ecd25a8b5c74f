package discussion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/roundtable/persona"
)

// ErrInvalidRounds is returned by Run when the round count is below 1.
var ErrInvalidRounds = errors.New("rounds must be at least 1")

// Coordinator drives a fixed-order round-robin discussion: for every round,
// each persona speaks once in registry order, and each contribution is
// appended to the transcript. Turns run strictly sequentially, so the
// generator for turn i can be handed everything said in turns 1..i-1.
type Coordinator struct {
	registry          *persona.Registry
	independentRounds bool
}

// NewCoordinator creates a coordinator over the given registry.
func NewCoordinator(registry *persona.Registry, opts ...Option) (*Coordinator, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	c := &Coordinator{
		registry: registry,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Run executes the discussion and returns the transcript.
//
// A generation error fails only the turn that produced it: the error
// description is recorded as a failed-turn sentinel and the run continues,
// so a full run always yields rounds x len(personas) turns and the caller
// can inspect the complete picture of what succeeded and what failed.
//
// Cancellation is checked only at turn boundaries. When ctx is done, Run
// stops before the next turn starts and returns the partial transcript
// together with ctx's error; no half-finished turn is ever recorded.
func (c *Coordinator) Run(ctx context.Context, topic string, rounds int, gen ResponseGenerator) (*Transcript, error) {
	if rounds < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRounds, rounds)
	}
	if gen == nil {
		return nil, fmt.Errorf("generator is required")
	}

	personas := c.registry.List()
	transcript := NewTranscript(topic)

	slog.Info("discussion.run.start",
		"discussion_id", transcript.ID,
		"topic", topic,
		"rounds", rounds,
		"personas", len(personas),
	)

	for round := 1; round <= rounds; round++ {
		roundStart := len(transcript.Turns)

		for _, p := range personas {
			if err := ctx.Err(); err != nil {
				slog.Warn("discussion.run.cancelled",
					"discussion_id", transcript.ID,
					"round", round,
					"completed_turns", len(transcript.Turns),
				)
				return transcript, err
			}

			visible := len(transcript.Turns)
			if c.independentRounds {
				visible = roundStart
			}

			text, err := gen.Generate(ctx, p, topic, transcript.snapshot(visible))

			turn := Turn{
				Persona:   p.ID,
				Round:     round,
				CreatedAt: time.Now(),
			}
			if err != nil {
				turn.Err = err.Error()
				slog.Warn("discussion.turn.failed",
					"discussion_id", transcript.ID,
					"persona", p.ID,
					"round", round,
					"error", err,
				)
			} else {
				turn.Text = text
			}
			transcript.Turns = append(transcript.Turns, turn)
		}
	}

	slog.Info("discussion.run.complete",
		"discussion_id", transcript.ID,
		"turns", len(transcript.Turns),
		"failed_turns", len(transcript.Failed()),
	)
	return transcript, nil
}
