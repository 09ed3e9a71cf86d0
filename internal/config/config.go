// Package config loads genescan settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config is given. It is optional.
const DefaultPath = "genescan.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Environment overrides.
const (
	EnvMinRun   = "GENESCAN_MIN_RUN"
	EnvOutput   = "GENESCAN_OUTPUT"
	EnvLogLevel = "GENESCAN_LOG_LEVEL"
)

// Config holds the tool settings.
type Config struct {
	MinRun   int    `yaml:"min_run"`
	Output   string `yaml:"output"` // text, json
	ListRuns bool   `yaml:"list_runs"`
	Timing   bool   `yaml:"timing"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures diagnostics on stderr.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MinRun: 5,
		Output: FormatText,
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is an error only when mustExist is set.
func Load(path string, mustExist bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !mustExist:
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v, ok := os.LookupEnv(EnvMinRun); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMinRun, err)
		}
		c.MinRun = n
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks the invariants every command relies on.
func (c *Config) Validate() error {
	if c.MinRun < 1 {
		return errors.New("min_run must be ≥ 1")
	}
	switch c.Output {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid output %q", c.Output)
	}
	return nil
}
