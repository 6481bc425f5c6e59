package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	validOutputFormats = []string{"text", "json", "csv"}
	validLogLevels     = []string{"debug", "info", "warn", "error"}
	validLogFormats    = []string{"text", "json"}
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks every field and returns all problems joined together.
func Validate(cfg *Config) error {
	var errs []error

	if !slices.Contains(validOutputFormats, cfg.Output.Format) {
		errs = append(errs, oneOf("output.format", cfg.Output.Format, validOutputFormats))
	}
	if !slices.Contains(validLogLevels, strings.ToLower(cfg.Log.Level)) {
		errs = append(errs, oneOf("log.level", cfg.Log.Level, validLogLevels))
	}
	if !slices.Contains(validLogFormats, cfg.Log.Format) {
		errs = append(errs, oneOf("log.format", cfg.Log.Format, validLogFormats))
	}
	if cfg.Metrics.Wait && cfg.Metrics.Address == "" {
		errs = append(errs, &ValidationError{
			Field:   "metrics.wait",
			Message: "requires metrics.address to be set",
		})
	}
	if cfg.Metrics.PushURL != "" && cfg.Metrics.Job == "" {
		errs = append(errs, &ValidationError{
			Field:   "metrics.job",
			Message: "must be set when metrics.push_url is set",
		})
	}

	return errors.Join(errs...)
}

func oneOf(field, got string, valid []string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be one of: %s (got: %q)", strings.Join(valid, ", "), got),
	}
}
