// Package config loads runtime settings for the climate command.
//
// Settings come from three layers, later ones winning:
//
//  1. Built-in defaults (see defaults.go)
//  2. An optional YAML file
//  3. CLIMATE_SECTION_FIELD environment variables
//
// Command-line flags are applied on top by the caller.
package config

// Config is the complete runtime configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`

	// Inputs are the lines parsed when none are given on the command line.
	Inputs []string `yaml:"inputs"`
}

// OutputConfig controls how parsed records are printed.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// MetricsConfig controls Prometheus exposure.
type MetricsConfig struct {
	// Address serves /metrics when non-empty (e.g. ":9090").
	Address string `yaml:"address"`
	// PushURL pushes to a Pushgateway when non-empty.
	PushURL string `yaml:"push_url"`
	Job     string `yaml:"job"`
	// Wait keeps the process alive for scraping after all inputs are parsed.
	Wait bool `yaml:"wait"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
