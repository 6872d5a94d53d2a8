package config

import (
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/viper"

	"github.com/angeloszaimis/nodeselect/internal/strategy"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type ClusterConfig struct {
	Name string `mapstructure:"name"`
}

type StrategyConfig struct {
	Type string `mapstructure:"type"`
}

type NodeConfig struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
}

type EvictionConfig struct {
	FailureThreshold int    `mapstructure:"failure_threshold"`
	Window           string `mapstructure:"window"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Cluster  ClusterConfig  `mapstructure:"cluster"`
	Strategy StrategyConfig `mapstructure:"strategy"`
	Nodes    []NodeConfig   `mapstructure:"nodes"`
	Eviction EvictionConfig `mapstructure:"eviction"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// WindowDuration returns the parsed eviction window.
func (c *Config) WindowDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Eviction.Window)
	if err != nil {
		return 0, fmt.Errorf("eviction window %q: %w", c.Eviction.Window, err)
	}
	return d, nil
}

// Loader reads configuration from a YAML file and the environment.
type Loader struct {
	v      *viper.Viper
	logger *slog.Logger
}

func NewLoader(logger *slog.Logger) *Loader {
	v := viper.New()

	v.SetDefault("cluster.name", "default")
	v.SetDefault("strategy.type", strategy.TypeRoundRobin)
	v.SetDefault("eviction.failure_threshold", 0)
	v.SetDefault("eviction.window", "30s")
	v.SetDefault("logging.level", LogLevelInfo)
	v.SetDefault("logging.format", LogFormatText)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return &Loader{v: v, logger: logger}
}

// Load reads config.yaml from ./config or the working directory. A missing
// file falls back to defaults and environment variables.
func Load() (*Config, error) {
	return NewLoader(slog.Default()).Load()
}

func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			l.logger.Error("failed to read config file", slog.String("error", err.Error()))
			return nil, err
		}
		l.logger.Warn("config file not found, using defaults and environment variables")
	} else {
		l.logger.Info("loaded config file", slog.String("file", l.v.ConfigFileUsed()))
	}

	return l.decode()
}

// LoadFile reads the configuration from an explicit path.
func (l *Loader) LoadFile(path string) (*Config, error) {
	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		l.logger.Error("failed to read config file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return nil, err
	}

	l.logger.Info("loaded config file", slog.String("file", l.v.ConfigFileUsed()))
	return l.decode()
}

// Watch calls onChange with the new configuration every time the loaded
// file is written. Reloads that fail validation are logged and dropped.
// Watch must be called after a successful Load or LoadFile.
func (l *Loader) Watch(onChange func(*Config)) {
	l.v.OnConfigChange(func(event fsnotify.Event) {
		l.logger.Info("config file changed", slog.String("file", event.Name))

		cfg, err := l.decode()
		if err != nil {
			return
		}
		onChange(cfg)
	})
	l.v.WatchConfig()
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		l.logger.Error("failed to unmarshal config", slog.String("error", err.Error()))
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		l.logger.Error("invalid configuration", slog.String("error", err.Error()))
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Cluster,
			validation.By(func(value interface{}) error {
				cc, ok := value.(ClusterConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a ClusterConfig")
				}
				return validation.ValidateStruct(&cc,
					validation.Field(&cc.Name, validation.Required),
				)
			}),
		),
		validation.Field(&c.Strategy,
			validation.By(func(value interface{}) error {
				sc, ok := value.(StrategyConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a StrategyConfig")
				}
				return validation.ValidateStruct(&sc,
					validation.Field(&sc.Type,
						validation.Required,
						validation.In(strategy.TypeRoundRobin, strategy.TypeRandom),
					),
				)
			}),
		),
		validation.Field(&c.Nodes,
			validation.Each(validation.By(validateNodeConfig)),
		),
		validation.Field(&c.Eviction,
			validation.By(func(value interface{}) error {
				ec, ok := value.(EvictionConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be an EvictionConfig")
				}
				return validation.ValidateStruct(&ec,
					validation.Field(&ec.FailureThreshold, validation.Min(0)),
					validation.Field(&ec.Window,
						validation.Required,
						validation.By(validateDuration),
					),
				)
			}),
		),
		validation.Field(&c.Logging,
			validation.By(func(value interface{}) error {
				lc, ok := value.(LoggingConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
				}
				return validation.ValidateStruct(&lc,
					validation.Field(&lc.Level,
						validation.Required,
						validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
					),
					validation.Field(&lc.Format,
						validation.Required,
						validation.In(LogFormatText, LogFormatJSON),
					),
				)
			}),
		),
	)
}

func validateNodeConfig(value interface{}) error {
	node, ok := value.(NodeConfig)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a NodeConfig")
	}

	if node.Name == "" {
		return validation.NewError("validation_empty_name", "node name cannot be empty")
	}

	return validateHostPort(node.Address)
}

func validateHostPort(value interface{}) error {
	addr, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return validation.NewError("validation_invalid_hostport", "must be in host:port format")
	}

	if port == "" {
		return validation.NewError("validation_invalid_port", "port cannot be empty")
	}

	if host != "" {
		if err := is.Host.Validate(host); err != nil {
			return validation.NewError("validation_invalid_host", "invalid host")
		}
	}

	return nil
}

func validateDuration(value interface{}) error {
	durationStr, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	d, err := time.ParseDuration(durationStr)
	if err != nil {
		return validation.NewError("validation_invalid_duration", "must be a valid duration (e.g., 2s, 5m, 1h)")
	}

	if d < 0 {
		return validation.NewError("validation_negative_duration", "must not be negative")
	}

	return nil
}
