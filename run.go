package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"climate-parser/config"
	customerrors "climate-parser/errors"
	"climate-parser/formatter"
	"climate-parser/metrics"
	"climate-parser/parser"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/spf13/cobra"
)

// reportedError marks a failure whose message was already written to stderr.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

func run(cmd *cobra.Command, flags *rootFlags, args []string) error {
	cfg, err := config.Load(flags.cfgFile)
	if err != nil {
		return err
	}

	// Flags are the last layer, so validation waits until they are applied.
	applyFlagOverrides(cfg, flags)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	logger := newLogger(cfg.Log, cmd.ErrOrStderr()).With("run_id", uuid.NewString())

	if cfg.Metrics.Address != "" {
		server := startMetricsServer(cfg.Metrics.Address, logger)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logger.Error("metrics server shutdown error", "error", err)
			}
		}()
	}

	inputs := cfg.Inputs
	if len(args) > 0 {
		inputs = args
	}

	parseErr := parseInputs(inputs, cfg.Output.Format, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)

	// Push even when parsing failed so the failure is visible to the gateway.
	if cfg.Metrics.PushURL != "" {
		if err := push.New(cfg.Metrics.PushURL, cfg.Metrics.Job).Gatherer(metrics.Registry).Push(); err != nil {
			logger.Error("error pushing to Pushgateway", "url", cfg.Metrics.PushURL, "error", err)
		} else {
			logger.Info("metrics pushed to Pushgateway", "url", cfg.Metrics.PushURL, "job", cfg.Metrics.Job)
		}
	}

	if cfg.Metrics.Wait {
		logger.Info("process kept alive for metric scraping, press Ctrl+C to exit")
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		<-ctx.Done()
		stop()
	}

	return parseErr
}

// applyFlagOverrides copies non-empty flags over the loaded config.
func applyFlagOverrides(cfg *config.Config, flags *rootFlags) {
	if flags.format != "" {
		cfg.Output.Format = flags.format
	}
	if flags.metricsAddr != "" {
		cfg.Metrics.Address = flags.metricsAddr
	}
	if flags.pushURL != "" {
		cfg.Metrics.PushURL = flags.pushURL
	}
	if flags.wait {
		cfg.Metrics.Wait = true
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
}

// parseInputs parses each input in order and writes the formatted record to
// stdout. It stops at the first failure, writes it to stderr and returns it.
func parseInputs(inputs []string, format string, stdout, stderr io.Writer, logger *slog.Logger) error {
	for i, input := range inputs {
		start := time.Now()
		record, err := parser.Parse(input)
		metrics.ObserveParse(input, err, time.Since(start))

		if err != nil {
			kind, _ := customerrors.KindOf(err)
			logger.Debug("parse failed",
				"index", i,
				"input", input,
				"error_type", kind.String(),
				"error", err,
			)
			fmt.Fprint(stderr, formatter.FormatError(err, format))
			return &reportedError{err: err}
		}

		logger.Debug("parsed record",
			"index", i,
			"city", record.City,
			"year", record.Year,
			"temperature", record.Temperature,
		)

		out, err := formatter.Format(record, format)
		if err != nil {
			return fmt.Errorf("error formatting input %d: %w", i, err)
		}
		fmt.Fprint(stdout, out)
	}
	return nil
}

func startMetricsServer(addr string, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics server listening", "address", addr+"/metrics")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()

	return server
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
