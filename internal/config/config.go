// Package config loads the optional YAML settings file. Environment
// variables are applied on top of it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/waypoint/internal/llm"
)

const (
	DefaultLocation = "Tokyo"
	DefaultTheme    = "Classic Sightseeing"
	DefaultLogLevel = "warn"
)

// PlannerConfig holds defaults for the day planner form and the plan command.
type PlannerConfig struct {
	Location string `yaml:"location"`
	Theme    string `yaml:"theme"`
}

// LLMFileConfig mirrors llm.LLMConfig. Nil or zero values keep the defaults.
type LLMFileConfig struct {
	Enabled    *bool  `yaml:"enabled,omitempty"`
	Endpoint   string `yaml:"endpoint,omitempty"`
	Model      string `yaml:"model,omitempty"`
	TimeoutMs  int    `yaml:"timeout_ms,omitempty"`
	MaxRetries *int   `yaml:"max_retries,omitempty"`
	LogCalls   *bool  `yaml:"log_calls,omitempty"`
}

// Config is the top-level application configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string        `yaml:"log_level"`
	Planner  PlannerConfig `yaml:"planner"`
	LLM      LLMFileConfig `yaml:"llm"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Planner: PlannerConfig{
			Location: DefaultLocation,
			Theme:    DefaultTheme,
		},
	}
}

// Normalize fills in missing values with defaults.
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if strings.TrimSpace(c.Planner.Location) == "" {
		c.Planner.Location = DefaultLocation
	}
	if strings.TrimSpace(c.Planner.Theme) == "" {
		c.Planner.Theme = DefaultTheme
	}
}

// DefaultPath returns $WAYPOINT_CONFIG, or ~/.waypoint/config.yaml.
func DefaultPath() string {
	if p := os.Getenv("WAYPOINT_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".waypoint", "config.yaml")
	}
	return filepath.Join(home, ".waypoint", "config.yaml")
}

// Load reads the YAML file at path. A missing file is not an error and
// yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Normalize()
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LLMConfig resolves the LLM settings: defaults, then the file, then
// WAYPOINT_LLM_* environment variables.
func (c *Config) LLMConfig() llm.LLMConfig {
	out := llm.DefaultConfig()
	f := c.LLM
	if f.Enabled != nil {
		out.Enabled = *f.Enabled
	}
	if f.LogCalls != nil {
		out.LogCalls = *f.LogCalls
	}
	if f.Endpoint != "" {
		out.Endpoint = strings.TrimRight(f.Endpoint, "/")
	}
	if f.Model != "" {
		out.Model = f.Model
	}
	if f.TimeoutMs > 0 {
		out.TimeoutMs = f.TimeoutMs
	}
	if f.MaxRetries != nil && *f.MaxRetries >= 0 {
		out.MaxRetries = *f.MaxRetries
	}
	llm.ApplyEnv(&out)
	return out
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log_level %q (expected debug, info, warn or error)", s)
	}
}
