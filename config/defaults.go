package config

// Default values for configuration fields.
const (
	DefaultOutputFormat = "text"
	DefaultMetricsJob   = "climate_parser"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// DefaultInputs are the two example lines parsed when nothing else is given.
// The second one is empty and fails on purpose.
var DefaultInputs = []string{"Hong Kong,1999,25.7", ""}

// NewDefault returns a Config populated entirely with defaults.
func NewDefault() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields with defaults.
// A nil Inputs slice gets DefaultInputs; an explicitly empty list is kept.
func ApplyDefaults(cfg *Config) {
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
	if cfg.Metrics.Job == "" {
		cfg.Metrics.Job = DefaultMetricsJob
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Inputs == nil {
		cfg.Inputs = append([]string(nil), DefaultInputs...)
	}
}
