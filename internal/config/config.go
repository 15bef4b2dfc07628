// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Output formats understood by the CLI.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputText = "text"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvOwnHost = "FORMAT_ANALYZER_OWN_HOST"
	EnvWeights = "FORMAT_ANALYZER_WEIGHTS"
	EnvPort    = "FORMAT_ANALYZER_PORT"
	EnvWorkers = "FORMAT_ANALYZER_WORKERS"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	OwnHost     string `json:"own_host,omitempty"`     // Site host; links elsewhere count as external
	Weights     string `json:"weights,omitempty"`      // Path to a YAML or JSON weight table
	Output      string `json:"output,omitempty"`       // json, yaml or text
	Workers     int    `json:"workers,omitempty"`      // Concurrent analyses for batch runs
	Port        int    `json:"port,omitempty"`         // HTTP port for serve
	CORSOrigin  string `json:"cors_origin,omitempty"`  // Access-Control-Allow-Origin value
	CheckSchema bool   `json:"check_schema,omitempty"` // Validate output against JSON schemas
	Verbose     bool   `json:"verbose,omitempty"`      // Debug logging
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Output:     OutputJSON,
		Workers:    4,
		Port:       8080,
		CORSOrigin: "*",
	}
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.Output {
	case "", OutputJSON, OutputYAML, OutputText:
	default:
		return fmt.Errorf("config error: 'output' must be one of json, yaml, text (got %q)", c.Output)
	}

	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.Weights != "" {
		if _, err := os.Stat(c.Weights); os.IsNotExist(err) {
			return fmt.Errorf("config error: weights file not found: %s", c.Weights)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.OwnHost == "" {
		result.OwnHost = defaults.OwnHost
	}
	if result.Weights == "" {
		result.Weights = defaults.Weights
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.CORSOrigin == "" {
		result.CORSOrigin = defaults.CORSOrigin
	}

	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so flags always win

	return result
}

// ApplyEnv fills empty fields from environment variables.
func (c *Config) ApplyEnv() {
	if c.OwnHost == "" {
		c.OwnHost = os.Getenv(EnvOwnHost)
	}
	if c.Weights == "" {
		c.Weights = os.Getenv(EnvWeights)
	}
	if c.Port == 0 {
		c.Port = getEnvInt(EnvPort, 0)
	}
	if c.Workers == 0 {
		c.Workers = getEnvInt(EnvWorkers, 0)
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
