package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-scheduler/internal/logger"
)

// Config holds runtime parameters for the alarm scheduler.
type Config struct {
	// PollInterval is how long the dispatcher sleeps when the pending queue is empty.
	PollInterval time.Duration `yaml:"poll_interval"`
	// TickInterval is how often a countdown worker reports remaining time.
	TickInterval time.Duration `yaml:"tick_interval"`
	// LogLevel is the minimum level for log output (debug, info, warn, error, ...).
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for scheduler settings.
	DefaultConfigFilename = "alarm-scheduler-settings.yaml"

	// DefaultPollInterval is the dispatcher sleep when no alarms are pending.
	DefaultPollInterval = time.Second

	// DefaultTickInterval is the countdown reporting period.
	DefaultTickInterval = 2 * time.Second

	// DefaultLogLevel is used when the settings file does not set one.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownLogLevel is returned when the configured log level cannot be parsed.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		PollInterval: DefaultPollInterval,
		TickInterval: DefaultTickInterval,
		LogLevel:     DefaultLogLevel,
	}
}

// Load reads configuration from the provided path and validates it.
// A missing file is not an error: the scheduler runs fine on defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults for unset fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	// Non-positive intervals fall back to defaults.
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	return nil
}
