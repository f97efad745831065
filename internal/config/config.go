// SPDX-License-Identifier: MIT

// Package config loads the settings of the wavefront command: defaults, then
// an optional YAML file, then WAVEFRONT_* environment variables. Command-line
// flags are applied last by the command itself.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WAVEFRONT_"

// DefaultPath is read from the working directory when no path is given.
const DefaultPath = "wavefront.yaml"

// Config is the full command configuration.
type Config struct {
	Workers          int           `yaml:"workers"`
	StepTimeout      time.Duration `yaml:"step_timeout"`
	LocalParallelism int           `yaml:"local_parallelism"`
	LogLevel         string        `yaml:"log_level"`
	LogFormat        string        `yaml:"log_format"`
	Tracing          bool          `yaml:"tracing"`
	Hub              Hub           `yaml:"hub"`
	Generator        Generator     `yaml:"generator"`
}

// Hub holds the networked transport settings.
type Hub struct {
	Listen string `yaml:"listen"` // address the hub serves on
	URL    string `yaml:"url"`    // hub base URL used by workers and coordinators
}

// Generator holds the input generator settings. Seed 0 means time-seeded.
type Generator struct {
	Alphabet string `yaml:"alphabet"`
	Seed     int64  `yaml:"seed"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers:          4,
		StepTimeout:      30 * time.Second,
		LocalParallelism: 1,
		LogLevel:         "info",
		LogFormat:        "auto",
		Hub: Hub{
			Listen: ":8080",
			URL:    "http://localhost:8080",
		},
		Generator: Generator{Alphabet: "ACGT"},
	}
}

// Load returns Default overlaid with the YAML file at path and the
// environment. An empty path reads DefaultPath if it exists; an explicit path
// must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	optional := path == ""
	if optional {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case optional && errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnv overlays WAVEFRONT_* variables found by lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"WORKERS":           &c.Workers,
		"LOCAL_PARALLELISM": &c.LocalParallelism,
	}
	for key, dst := range ints {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err)
			}
			*dst = n
		}
	}

	strs := map[string]*string{
		"LOG_LEVEL":          &c.LogLevel,
		"LOG_FORMAT":         &c.LogFormat,
		"HUB_LISTEN":         &c.Hub.Listen,
		"HUB_URL":            &c.Hub.URL,
		"GENERATOR_ALPHABET": &c.Generator.Alphabet,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "STEP_TIMEOUT"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sSTEP_TIMEOUT: %w", EnvPrefix, err)
		}
		c.StepTimeout = d
	}
	if v, ok := lookup(EnvPrefix + "TRACING"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sTRACING: %w", EnvPrefix, err)
		}
		c.Tracing = b
	}
	if v, ok := lookup(EnvPrefix + "GENERATOR_SEED"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("config: %sGENERATOR_SEED: %w", EnvPrefix, err)
		}
		c.Generator.Seed = n
	}

	return nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	case c.StepTimeout < 0:
		return fmt.Errorf("%w: step_timeout must not be negative, got %s", ErrInvalid, c.StepTimeout)
	case c.LocalParallelism < 1:
		return fmt.Errorf("%w: local_parallelism must be at least 1, got %d", ErrInvalid, c.LocalParallelism)
	case c.Generator.Alphabet == "":
		return fmt.Errorf("%w: generator.alphabet is empty", ErrInvalid)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	}

	return nil
}
