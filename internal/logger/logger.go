package logger

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/roundtable/config"
)

// Initialize sets up the process-wide slog default from the log config.
func Initialize(cfg *config.Config) {
	var level slog.Level
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Transcripts go to stdout, so logs default to stderr.
	var writer *os.File = os.Stderr
	if cfg.Log.Output != "" && cfg.Log.Output != "stderr" {
		f, err := os.OpenFile(cfg.Log.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", cfg.Log.Output, err)
		} else {
			writer = f
		}
	}

	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	slog.SetDefault(slog.New(handler))

	// Redirect the standard log package to the same handler.
	log.SetOutput(slog.NewLogLogger(handler, level).Writer())
}
