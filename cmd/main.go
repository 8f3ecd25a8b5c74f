package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/roundtable/agent"
	"github.com/roundtable/config"
	"github.com/roundtable/discussion"
	"github.com/roundtable/internal/llm"
	"github.com/roundtable/internal/logger"
	"github.com/roundtable/internal/middleware"
	"github.com/roundtable/internal/render"
	"github.com/roundtable/persona"
)

func main() {
	configPath := flag.String("config", "./config.toml", "config file path")
	topic := flag.String("topic", "", "discussion topic (overrides config)")
	rounds := flag.Int("rounds", 0, "discussion rounds (overrides config)")
	dryRun := flag.Bool("dry-run", false, "use the deterministic template generator instead of model backends")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewLoader(*configPath).Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.Initialize(cfg)

	registry, err := persona.NewRegistry(cfg.PersonaList())
	if err != nil {
		log.Fatalf("failed to build persona registry: %v", err)
	}

	runTopic := cfg.App.Topic
	if *topic != "" {
		runTopic = *topic
	}
	runRounds := cfg.Discussion.Rounds
	if *rounds != 0 {
		runRounds = *rounds
	}

	gen, cleanup, err := buildGenerator(ctx, cfg, registry, *dryRun)
	if err != nil {
		log.Fatalf("failed to build generator: %v", err)
	}
	defer cleanup()

	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)
	gen = middleware.Chain(gen, middleware.Logging(), metrics.Wrap)

	var opts []discussion.Option
	if cfg.Discussion.IndependentRounds {
		opts = append(opts, discussion.WithIndependentRounds())
	}
	coordinator, err := discussion.NewCoordinator(registry, opts...)
	if err != nil {
		log.Fatalf("failed to create coordinator: %v", err)
	}

	transcript, err := coordinator.Run(ctx, runTopic, runRounds, gen)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			slog.Warn("main.run.interrupted", "completed_turns", transcript.Len())
		} else {
			log.Fatalf("failed to run discussion: %v", err)
		}
	}

	dump, err := render.BuildDumpV1(transcript, registry)
	if err != nil {
		log.Fatalf("failed to build transcript dump: %v", err)
	}
	doc, err := render.EncodeMarkdownV1(dump)
	if err != nil {
		log.Fatalf("failed to render transcript: %v", err)
	}
	os.Stdout.Write(doc)
	fmt.Println()
	render.Summary(os.Stdout, transcript, registry)
}

// buildGenerator selects the response generator: the deterministic template
// for dry runs, persona-keyed model backends otherwise.
func buildGenerator(ctx context.Context, cfg *config.Config, registry *persona.Registry, dryRun bool) (discussion.ResponseGenerator, func(), error) {
	if dryRun {
		return discussion.NewTemplateGenerator(), func() {}, nil
	}

	factory := llm.NewFactory()
	models := llm.NewModelRegistry()
	for _, p := range registry.List() {
		llmCfg := cfg.LLMFor(p.ID)
		model, err := factory.Build(ctx, llmCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("build model for %s: %w", p.ID, err)
		}
		models.Register(p.ID, model)
		slog.Info("main.model.register",
			"persona", p.ID,
			"provider", llmCfg.Provider,
			"model", llmCfg.Model,
		)
	}

	gen, err := agent.NewModelGenerator(agent.ModelGeneratorConfig{
		Registry: registry,
		Models:   models,
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := models.Close(); err != nil {
			slog.Warn("main.models.close", "error", err)
		}
	}
	return gen, cleanup, nil
}
