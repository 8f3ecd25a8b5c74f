package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/roundtable/discussion"
	"github.com/roundtable/persona"
)

// Logging logs every generation call with its duration and outcome.
func Logging() Middleware {
	return func(next discussion.ResponseGenerator) discussion.ResponseGenerator {
		return discussion.GeneratorFunc(func(ctx context.Context, p persona.Persona, topic string, prior *discussion.Transcript) (string, error) {
			slog.Debug("generator.turn.start",
				"persona", p.ID,
				"prior_turns", prior.Len(),
			)

			start := time.Now()
			text, err := next.Generate(ctx, p, topic, prior)
			elapsed := time.Since(start)

			if err != nil {
				slog.Warn("generator.turn.error",
					"persona", p.ID,
					"duration", elapsed,
					"error", err,
				)
				return "", err
			}

			slog.Debug("generator.turn.complete",
				"persona", p.ID,
				"duration", elapsed,
				"chars", len(text),
			)
			return text, nil
		})
	}
}
