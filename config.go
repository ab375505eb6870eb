package podbot

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Willfwalker/Discord-Bot/internal/logging"
	"github.com/Willfwalker/Discord-Bot/render"
	"github.com/Willfwalker/Discord-Bot/strategy"
	"gopkg.in/yaml.v3"
)

// LogConfig controls the process logger built by cmd/podbot.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// MetricsConfig controls Prometheus exposition.
type MetricsConfig struct {
	// Addr is the listen address of the /metrics endpoint. Empty disables it.
	Addr string `yaml:"addr"`

	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace"`
}

// NATSConfig controls distribution event publishing.
type NATSConfig struct {
	// URL of the NATS server. Empty disables publishing.
	URL string `yaml:"url"`

	// SubjectPrefix is the first token of every event subject.
	SubjectPrefix string `yaml:"subjectPrefix"`
}

// Config is the configuration for the Bot.
//
// All duration fields accept standard Go duration strings like "30s", "5m".
type Config struct {
	// CommandPrefix precedes every command (e.g. "!" for "!distribute").
	CommandPrefix string `yaml:"commandPrefix"`

	// PodLeadRole is the exact name of the role marking pod leads.
	PodLeadRole string `yaml:"podLeadRole"`

	// PodChannelPrefix names pod voice channels ("<prefix> <n>").
	// Empty voice channels whose name starts with it are deleted.
	PodChannelPrefix string `yaml:"podChannelPrefix"`

	// CreateChannels enables per-pod voice channels and member moves for
	// channel-scoped runs. SetDefaults cannot tell an explicit false from
	// unset, so start from DefaultConfig when building a Config by hand.
	CreateChannels bool `yaml:"createChannels"`

	// Strategy selects the pod strategy: "shuffle" or "roundrobin".
	Strategy string `yaml:"strategy"`

	// RelocationConcurrency bounds concurrent member moves per pod.
	// 1 moves members one at a time.
	RelocationConcurrency int `yaml:"relocationConcurrency"`

	// FieldLimit caps the characters of one summary field value.
	FieldLimit int `yaml:"fieldLimit"`

	// OperationTimeout bounds one command end to end.
	OperationTimeout time.Duration `yaml:"operationTimeout"`

	// ShutdownTimeout bounds the wait for in-flight commands on Stop.
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`

	// SweepInterval is how often tracked pod channels are re-checked and
	// deleted when empty. A channel is only swept once it is older than
	// OperationTimeout, so moves into it have finished.
	SweepInterval time.Duration `yaml:"sweepInterval"`

	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	NATS    NATSConfig    `yaml:"nats"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		CommandPrefix:         "!",
		PodLeadRole:           "Pod Lead",
		PodChannelPrefix:      "🎯 Pod",
		CreateChannels:        true,
		Strategy:              strategy.NameShuffle,
		RelocationConcurrency: 1,
		FieldLimit:            render.DefaultFieldLimit,
		OperationTimeout:      30 * time.Second,
		ShutdownTimeout:       10 * time.Second,
		SweepInterval:         5 * time.Minute,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Namespace: "podbot",
		},
		NATS: NATSConfig{
			SubjectPrefix: "podbot",
		},
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.CommandPrefix == "" {
		cfg.CommandPrefix = defaults.CommandPrefix
	}
	if cfg.PodLeadRole == "" {
		cfg.PodLeadRole = defaults.PodLeadRole
	}
	if cfg.PodChannelPrefix == "" {
		cfg.PodChannelPrefix = defaults.PodChannelPrefix
	}
	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	if cfg.RelocationConcurrency == 0 {
		cfg.RelocationConcurrency = defaults.RelocationConcurrency
	}
	if cfg.FieldLimit == 0 {
		cfg.FieldLimit = defaults.FieldLimit
	}
	if cfg.OperationTimeout == 0 {
		cfg.OperationTimeout = defaults.OperationTimeout
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if cfg.SweepInterval == 0 {
		cfg.SweepInterval = defaults.SweepInterval
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaults.Log.Format
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaults.Metrics.Namespace
	}
	if cfg.NATS.SubjectPrefix == "" {
		cfg.NATS.SubjectPrefix = defaults.NATS.SubjectPrefix
	}
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - CommandPrefix, PodLeadRole and PodChannelPrefix are non-blank
//   - CommandPrefix contains no whitespace
//   - Strategy names a built-in strategy
//   - RelocationConcurrency >= 1
//   - 0 < FieldLimit <= 1024 (platform limit)
//   - OperationTimeout > 0 and ShutdownTimeout > 0
//   - SweepInterval >= 0
//   - Log.Level parses and Log.Format is "text" or "json"
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.CommandPrefix) == "" {
		return fmt.Errorf("%w: CommandPrefix must not be blank", ErrInvalidConfig)
	}
	if strings.ContainsAny(cfg.CommandPrefix, " \t\n") {
		return fmt.Errorf("%w: CommandPrefix %q must not contain whitespace", ErrInvalidConfig, cfg.CommandPrefix)
	}
	if strings.TrimSpace(cfg.PodLeadRole) == "" {
		return fmt.Errorf("%w: PodLeadRole must not be blank", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.PodChannelPrefix) == "" {
		return fmt.Errorf("%w: PodChannelPrefix must not be blank", ErrInvalidConfig)
	}
	if _, err := strategy.New(cfg.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.RelocationConcurrency < 1 {
		return fmt.Errorf("%w: RelocationConcurrency must be >= 1, got %d", ErrInvalidConfig, cfg.RelocationConcurrency)
	}
	if cfg.FieldLimit <= 0 || cfg.FieldLimit > render.DefaultFieldLimit {
		return fmt.Errorf("%w: FieldLimit must be in (0, %d], got %d",
			ErrInvalidConfig, render.DefaultFieldLimit, cfg.FieldLimit)
	}
	if cfg.OperationTimeout <= 0 {
		return fmt.Errorf("%w: OperationTimeout must be > 0, got %v", ErrInvalidConfig, cfg.OperationTimeout)
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: ShutdownTimeout must be > 0, got %v", ErrInvalidConfig, cfg.ShutdownTimeout)
	}
	if cfg.SweepInterval < 0 {
		return fmt.Errorf("%w: SweepInterval must be >= 0, got %v", ErrInvalidConfig, cfg.SweepInterval)
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return fmt.Errorf("%w: Log.Format must be text or json, got %q", ErrInvalidConfig, cfg.Log.Format)
	}

	return nil
}

// ValidateWithWarnings logs warnings for legal but non-recommended values.
//
// This is called after Validate() in NewBot() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.RelocationConcurrency > 5 {
		logger.Warn(
			"RelocationConcurrency is high, member moves may hit platform rate limits",
			"relocationConcurrency", cfg.RelocationConcurrency,
			"recommended", "5 or lower",
		)
	}

	if cfg.OperationTimeout < 5*time.Second {
		logger.Warn(
			"OperationTimeout is very short, large pods may not finish moving",
			"operationTimeout", cfg.OperationTimeout,
			"recommended", "30s",
		)
	}

	if !cfg.CreateChannels {
		logger.Info("pod channels disabled, distributions only post a summary")
	}
}

// LoadConfig reads a YAML configuration file.
//
// Keys missing from the file keep their DefaultConfig values.
//
// Parameters:
//   - path: Path of the YAML file
//
// Returns:
//   - Config: Parsed configuration with defaults applied
//   - error: Read or decode error
//
// Example:
//
//	cfg, err := podbot.LoadConfig("podbot.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	SetDefaults(&cfg)

	return cfg, nil
}

// TestConfig returns a configuration suited to fast test execution.
//
// Returns:
//   - Config: DefaultConfig with short timeouts
//
// Example:
//
//	cfg := podbot.TestConfig()
//	bot, err := podbot.NewBot(&cfg, platform, platform, strategy.NewBalancedShuffle())
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.OperationTimeout = 5 * time.Second
	cfg.ShutdownTimeout = 2 * time.Second

	return cfg
}
