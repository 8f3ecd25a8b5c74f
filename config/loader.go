package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Loader reads, expands and validates the TOML configuration.
type Loader struct {
	path      string
	mu        sync.RWMutex
	config    *Config
	validator *validator.Validate
}

// NewLoader creates a loader for the given config file path.
func NewLoader(path string) *Loader {
	return &Loader{
		path:      path,
		validator: validator.New(),
	}
}

// Load parses the configuration. A missing config file is not an error: the
// defaults (builtin personas, three rounds) are used instead. A `.env` file
// next to the config file is loaded first so `${VAR}` placeholders and
// provider API keys can live outside the repository.
func (l *Loader) Load() (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	envPath := filepath.Join(filepath.Dir(l.path), ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}

	cfg := Default()

	content, err := os.ReadFile(l.path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if _, err := toml.Decode(expandEnv(string(content)), cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyDefaults(cfg)

	if err := l.validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	l.config = cfg
	return cfg, nil
}

// Get returns the last loaded configuration, nil before the first Load.
func (l *Loader) Get() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.config
}

// Path returns the config file path.
func (l *Loader) Path() string {
	return l.path
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.App.Name == "" {
		cfg.App.Name = def.App.Name
	}
	if cfg.App.Topic == "" {
		cfg.App.Topic = def.App.Topic
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
	if cfg.Discussion.Rounds == 0 {
		cfg.Discussion.Rounds = def.Discussion.Rounds
	}
}

// envPlaceholder matches ${VAR} and ${VAR:default}.
var envPlaceholder = regexp.MustCompile(`\$\{([^}:]+)(?::([^}]*))?\}`)

// expandEnv expands ${VAR} and ${VAR:default} placeholders.
func expandEnv(s string) string {
	return envPlaceholder.ReplaceAllStringFunc(s, func(match string) string {
		groups := envPlaceholder.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		if val := os.Getenv(groups[1]); val != "" {
			return val
		}
		if len(groups) >= 3 {
			return groups[2]
		}
		return ""
	})
}
