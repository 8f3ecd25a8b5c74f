package middleware

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/roundtable/discussion"
	"github.com/roundtable/persona"
)

// Metrics records per-turn generation counters and latency.
type Metrics struct {
	turns    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the turn metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		turns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "roundtable_turns_total",
			Help: "Generation turns by persona and outcome.",
		}, []string{"persona", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roundtable_turn_duration_seconds",
			Help:    "Generation call latency by persona.",
			Buckets: prometheus.DefBuckets,
		}, []string{"persona"}),
	}
}

// Wrap is the Middleware for these metrics.
func (m *Metrics) Wrap(next discussion.ResponseGenerator) discussion.ResponseGenerator {
	return discussion.GeneratorFunc(func(ctx context.Context, p persona.Persona, topic string, prior *discussion.Transcript) (string, error) {
		start := time.Now()
		text, err := next.Generate(ctx, p, topic, prior)
		m.duration.WithLabelValues(p.ID).Observe(time.Since(start).Seconds())

		status := "ok"
		if err != nil {
			status = "error"
		}
		m.turns.WithLabelValues(p.ID, status).Inc()

		return text, err
	})
}
