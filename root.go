package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	cfgFile     string
	format      string
	metricsAddr string
	pushURL     string
	wait        bool
	logLevel    string
	logFormat   string
}

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "climate [flags] [--] [input...]",
		Short: "Parse city,year,temperature records",
		Long: `climate parses comma-delimited lines of the form city,year,temperature
into typed records and reports exactly which validation step failed.

With no arguments it parses the inputs from the config file, which default to
"Hong Kong,1999,25.7" followed by an empty line. Processing stops at the first
failure and the process exits with status 1.

Put inputs after "--" when one could be mistaken for a flag or a subcommand:

  climate -- version "-5,1999,1"`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.cfgFile, "config", "c", "", "config file path (YAML)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: text|json|csv")
	cmd.Flags().StringVar(&flags.metricsAddr, "metrics-addr", "", "address to expose Prometheus metrics (e.g., :9090)")
	cmd.Flags().StringVar(&flags.pushURL, "push-url", "", "Pushgateway URL to push metrics to (e.g., http://localhost:9091)")
	cmd.Flags().BoolVar(&flags.wait, "wait", false, "keep running after completion to allow metric scraping")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level: debug|info|warn|error")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "", "log format: text|json")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
