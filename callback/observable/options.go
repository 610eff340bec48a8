package observable

import (
	"github.com/AntonStoeckl/callback-slot-go/callback"
)

type hookConfig struct {
	name             string
	metricsCollector callback.MetricsCollector
	tracingCollector callback.TracingCollector
	logger           callback.Logger
	contextualLogger callback.ContextualLogger
}

// Option defines a functional option for configuring a Hook.
type Option func(*hookConfig) error

// WithName sets the name reported in metric labels, span attributes and logs.
func WithName(name string) Option {
	return func(cfg *hookConfig) error {
		if name == "" {
			return callback.ErrEmptyHookName
		}

		cfg.name = name

		return nil
	}
}

// WithMetrics sets the metrics collector.
// It receives the invoke duration histogram and the invoke calls counter, labeled by callback name and status.
func WithMetrics(collector callback.MetricsCollector) Option {
	return func(cfg *hookConfig) error {
		cfg.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector. A span is started for every invocation that runs a callable.
func WithTracing(collector callback.TracingCollector) Option {
	return func(cfg *hookConfig) error {
		cfg.tracingCollector = collector
		return nil
	}
}

// WithLogging sets a plain logger:
//
// Debug level: invocation start and empty-slot skips
// Info level: completed invocations with duration
// Error level: invocations whose callable returned an error.
func WithLogging(logger callback.Logger) Option {
	return func(cfg *hookConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithContextualLogging sets a context-aware logger. It takes precedence over WithLogging.
func WithContextualLogging(logger callback.ContextualLogger) Option {
	return func(cfg *hookConfig) error {
		cfg.contextualLogger = logger
		return nil
	}
}
