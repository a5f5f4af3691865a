// SPDX-License-Identifier: MIT

// Package config loads the polyroute YAML configuration.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polyroute/core"
)

// Environment variables read by the CLI.
const (
	EnvConfigPath = "POLYROUTE_CONFIG"
	EnvName       = "POLYROUTE_ENV"
)

// Distance metric names accepted in routing.metric.
const (
	MetricEuclidean = "euclidean"
	MetricHaversine = "haversine"
)

// Config holds the polyroute configuration.
type Config struct {
	Env     string        `yaml:"env"` // local, dev, docker, prod (default: local)
	Logging LoggingConfig `yaml:"logging"`
	Routing RoutingConfig `yaml:"routing"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// RoutingConfig holds shortest-path settings.
type RoutingConfig struct {
	Metric      string  `yaml:"metric"`       // euclidean (default) | haversine
	MaxDistance float64 `yaml:"max_distance"` // 0 = unlimited
	PickRadius  float64 `yaml:"pick_radius"`  // 0 = nearest point at any distance
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // node-exporter textfile path; empty disables export
}

// Default returns a configuration with every default applied.
func Default() Config {
	var c Config
	c.ApplyDefaults()
	return c
}

// Load reads the YAML file at path. An empty path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes, substituting ${VAR} and ${VAR:-default} first.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the environment from POLYROUTE_ENV, or fallback when unset.
func GetEnv(fallback string) string {
	if env := os.Getenv(EnvName); env != "" {
		return env
	}
	return fallback
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Env == "" {
		c.Env = "local"
	}
	if c.Routing.Metric == "" {
		c.Routing.Metric = MetricEuclidean
	}
	c.Routing.Metric = strings.ToLower(c.Routing.Metric)
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	switch c.Env {
	case "local", "dev", "docker", "prod":
	default:
		return fmt.Errorf("env must be one of local, dev, docker, prod, got %q", c.Env)
	}
	if _, err := c.Routing.DistanceFunc(); err != nil {
		return err
	}
	if c.Routing.MaxDistance < 0 || math.IsNaN(c.Routing.MaxDistance) {
		return fmt.Errorf("routing.max_distance must be >= 0, got %v", c.Routing.MaxDistance)
	}
	if c.Routing.PickRadius < 0 || math.IsNaN(c.Routing.PickRadius) {
		return fmt.Errorf("routing.pick_radius must be >= 0, got %v", c.Routing.PickRadius)
	}
	return nil
}

// DistanceFunc maps Metric to its edge-weight function.
func (r RoutingConfig) DistanceFunc() (core.DistanceFunc, error) {
	switch r.Metric {
	case MetricEuclidean:
		return core.Euclidean, nil
	case MetricHaversine:
		return core.Haversine, nil
	default:
		return nil, fmt.Errorf("routing.metric must be %q or %q, got %q", MetricEuclidean, MetricHaversine, r.Metric)
	}
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
