package scheduler

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/oshokin/alarm-scheduler/internal/config"
	"github.com/oshokin/alarm-scheduler/internal/logger"
	core "github.com/oshokin/alarm-scheduler/internal/scheduler"
	"github.com/oshokin/alarm-scheduler/internal/service/common"
)

// Options controls the alarm-scheduler process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// PollInterval overrides the dispatcher poll interval from the settings file.
	PollInterval time.Duration
	// TickInterval overrides the countdown tick interval from the settings file.
	TickInterval time.Duration
	// LogLevel overrides the log level from the settings file.
	LogLevel string
}

// Run starts the scheduler core and serves the interactive prompt until the
// input stream ends or the context is canceled.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "alarm-scheduler")

	// Load settings from configuration file; CLI flags win over file values.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	applyOverrides(cfg, opts)

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	// Two schedulers prompting on the same terminal only confuse each other.
	if err = ensureSingleInstance(); err != nil {
		return err
	}

	// Detect current system actor for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		return fmt.Errorf("detect actor: %w", err)
	}

	logger.InfoKV(ctx, "Scheduler starting",
		"hostname", actor.Hostname, "username", actor.Username,
		"poll_interval", cfg.PollInterval.String(), "tick_interval", cfg.TickInterval.String())

	s := core.New(&core.Options{
		PollInterval: cfg.PollInterval,
		TickInterval: cfg.TickInterval,
		Reporter:     core.NewLogReporter(),
	})

	// The core runs until the input loop finishes or a signal cancels ctx.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})

	go func() {
		defer close(done)
		s.Run(runCtx)
	}()

	err = runInputLoop(runCtx, os.Stdin, os.Stdout, func(ctx context.Context, seconds int, message string) error {
		_, submitErr := s.Submit(ctx, seconds, message)

		return submitErr
	})

	cancel()
	<-done

	logger.Info(ctx, "Scheduler stopped")

	return err
}

// applyOverrides copies non-zero option values over the loaded settings.
func applyOverrides(cfg *config.Config, opts *Options) {
	if opts.PollInterval > 0 {
		cfg.PollInterval = opts.PollInterval
	}

	if opts.TickInterval > 0 {
		cfg.TickInterval = opts.TickInterval
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
}
