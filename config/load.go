package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path and
// validates it. Callers that layer more overrides on top (such as command-line
// flags) should use Load and call Validate once they are done.
func LoadConfig(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Load reads the YAML file at path, applies defaults and then environment
// overrides. An empty path skips the file. The result is not validated.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables use the format CLIMATE_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("CLIMATE_OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}

	if val := os.Getenv("CLIMATE_METRICS_ADDRESS"); val != "" {
		cfg.Metrics.Address = val
	}
	if val := os.Getenv("CLIMATE_METRICS_PUSH_URL"); val != "" {
		cfg.Metrics.PushURL = val
	}
	if val := os.Getenv("CLIMATE_METRICS_JOB"); val != "" {
		cfg.Metrics.Job = val
	}
	if val := os.Getenv("CLIMATE_METRICS_WAIT"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Wait = b
		}
	}

	if val := os.Getenv("CLIMATE_LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}
	if val := os.Getenv("CLIMATE_LOG_FORMAT"); val != "" {
		cfg.Log.Format = val
	}
}
