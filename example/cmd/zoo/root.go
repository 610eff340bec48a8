package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AntonStoeckl/callback-slot-go/callback"
	"github.com/AntonStoeckl/callback-slot-go/callback/observable"
	"github.com/AntonStoeckl/callback-slot-go/callback/oteladapters"
	"github.com/AntonStoeckl/callback-slot-go/example/shared/config"
)

const (
	version             = "dev"
	instrumentationName = "github.com/AntonStoeckl/callback-slot-go/example/cmd/zoo"
)

// app is the state shared by all subcommands once the root command has set it up.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
	providers  *config.ObservabilityProviders
	metrics    callback.MetricsCollector
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{v: viper.New()}

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)

	return errors.Join(err, a.close(context.WithoutCancel(ctx)))
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "zoo",
		Short:        "Zoo keepers fed through callback slots",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file path (YAML)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")

	// BindPFlag only fails for a nil flag.
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))

	root.AddCommand(newDemoCmd(a), newBenchCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	if !cfg.OTel.Enabled {
		return nil
	}

	providers, err := config.NewObservabilityProviders(cmd.Context(), cfg.OTel, version)
	if err != nil {
		return fmt.Errorf("failed to set up OpenTelemetry: %w", err)
	}

	a.providers = providers
	a.metrics = oteladapters.NewMetricsCollector(providers.MeterProvider.Meter(instrumentationName))

	return nil
}

func (a *app) close(ctx context.Context) error {
	if a.providers == nil {
		return nil
	}

	return a.providers.Shutdown(ctx)
}

// hookOptions instruments a hook with OpenTelemetry when it is enabled, and with the
// command's logger otherwise.
func (a *app) hookOptions(name string) []observable.Option {
	opts := []observable.Option{observable.WithName(name)}

	if a.providers == nil {
		return append(opts, observable.WithContextualLogging(a.logger))
	}

	tracer := a.providers.TracerProvider.Tracer(instrumentationName)

	return append(opts,
		observable.WithMetrics(a.metrics),
		observable.WithTracing(oteladapters.NewTracingCollector(tracer)),
		observable.WithContextualLogging(oteladapters.NewSlogBridgeLogger(instrumentationName)),
	)
}
