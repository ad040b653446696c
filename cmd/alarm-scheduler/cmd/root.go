package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-scheduler/internal/config"
	"github.com/oshokin/alarm-scheduler/internal/service/scheduler"
	"github.com/oshokin/alarm-scheduler/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// pollInterval overrides the dispatcher poll interval.
	pollInterval time.Duration
	// tickInterval overrides the countdown reporting interval.
	tickInterval time.Duration
	// logLevel overrides the configured log level.
	logLevel string

	// rootCmd represents the base command for running the interactive scheduler.
	rootCmd = &cobra.Command{
		Use:   "alarm-scheduler",
		Short: "Run the interactive alarm scheduler.",
		Long: `Starts the interactive alarm scheduler.

Type "<seconds> <message>" at the alarm> prompt to schedule an alarm.
Each accepted request is queued by expiry time; a dispatcher routes it by
the parity of its expiry instant to one of two countdown workers, which
report remaining time until the alarm expires. End the session with EOF
(Ctrl-D) or an interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &scheduler.Options{
				ConfigPath:   configPath,
				PollInterval: pollInterval,
				TickInterval: tickInterval,
				LogLevel:     logLevel,
			}

			return scheduler.Run(ctx, options)
		},
	}
)

// Execute runs the alarm-scheduler CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().
		DurationVarP(&pollInterval, "poll-interval", "p", 0, "dispatcher poll interval while the queue is empty")
	rootCmd.Flags().
		DurationVarP(&tickInterval, "tick-interval", "t", 0, "countdown reporting interval")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "minimum log level (debug, info, warn, error)")
}
