package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. ZOO_LOG_LEVEL or ZOO_OTEL_ENABLED.
const EnvPrefix = "ZOO"

// Configuration keys, also used to bind command line flags.
const (
	KeyLogLevel           = "log_level"
	KeyLogFormat          = "log_format"
	KeyFeedInterval       = "feed_interval"
	KeyFeedBurst          = "feed_burst"
	KeyBenchIterations    = "bench.iterations"
	KeyBenchWorkers       = "bench.workers"
	KeyOTelEnabled        = "otel.enabled"
	KeyOTelTraceEndpoint  = "otel.trace_endpoint"
	KeyOTelMetricEndpoint = "otel.metric_endpoint"
	KeyOTelLogEndpoint    = "otel.log_endpoint"
	KeyOTelServiceName    = "otel.service_name"
)

var (
	// ErrInvalidFeedInterval is returned by Validate for a zero or negative feed_interval.
	ErrInvalidFeedInterval = errors.New("feed_interval must be positive")

	// ErrInvalidFeedBurst is returned by Validate for a zero or negative feed_burst.
	ErrInvalidFeedBurst = errors.New("feed_burst must be positive")

	// ErrInvalidIterations is returned by Validate for a zero or negative bench.iterations.
	ErrInvalidIterations = errors.New("bench.iterations must be positive")

	// ErrInvalidWorkers is returned by Validate for a zero or negative bench.workers.
	ErrInvalidWorkers = errors.New("bench.workers must be positive")

	// ErrMissingServiceName is returned by Validate when otel is enabled without a service name.
	ErrMissingServiceName = errors.New("otel.service_name must not be empty when otel is enabled")
)

// Config holds all settings of the zoo command.
type Config struct {
	LogLevel     string        `mapstructure:"log_level"`
	LogFormat    string        `mapstructure:"log_format"`
	FeedInterval time.Duration `mapstructure:"feed_interval"`
	FeedBurst    int           `mapstructure:"feed_burst"`

	Bench struct {
		Iterations int `mapstructure:"iterations"`
		Workers    int `mapstructure:"workers"`
	} `mapstructure:"bench"`

	OTel OTelConfig `mapstructure:"otel"`
}

// OTelConfig selects where telemetry goes.
type OTelConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	TraceEndpoint  string `mapstructure:"trace_endpoint"`
	MetricEndpoint string `mapstructure:"metric_endpoint"`
	LogEndpoint    string `mapstructure:"log_endpoint"`
	ServiceName    string `mapstructure:"service_name"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyFeedInterval, 500*time.Millisecond)
	v.SetDefault(KeyFeedBurst, 1)
	v.SetDefault(KeyBenchIterations, 1_000_000)
	v.SetDefault(KeyBenchWorkers, 4)
	v.SetDefault(KeyOTelEnabled, false)
	v.SetDefault(KeyOTelTraceEndpoint, "localhost:4319")
	v.SetDefault(KeyOTelMetricEndpoint, "localhost:4317")
	v.SetDefault(KeyOTelLogEndpoint, "localhost:4317")
	v.SetDefault(KeyOTelServiceName, "zoo")
}

// Load reads the configuration into a Config.
//
// An empty path skips the config file. A path that cannot be read is an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that would make the commands misbehave.
func (c *Config) Validate() error {
	var errs []error

	if c.FeedInterval <= 0 {
		errs = append(errs, ErrInvalidFeedInterval)
	}

	if c.FeedBurst <= 0 {
		errs = append(errs, ErrInvalidFeedBurst)
	}

	if c.Bench.Iterations <= 0 {
		errs = append(errs, ErrInvalidIterations)
	}

	if c.Bench.Workers <= 0 {
		errs = append(errs, ErrInvalidWorkers)
	}

	if c.OTel.Enabled && c.OTel.ServiceName == "" {
		errs = append(errs, ErrMissingServiceName)
	}

	return errors.Join(errs...)
}
