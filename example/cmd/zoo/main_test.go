package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/time/rate"

	"github.com/AntonStoeckl/callback-slot-go/callback"
	"github.com/AntonStoeckl/callback-slot-go/callback/observable"
	"github.com/AntonStoeckl/callback-slot-go/callback/oteladapters"
	"github.com/AntonStoeckl/callback-slot-go/example/shared/config"
	"github.com/AntonStoeckl/callback-slot-go/example/zoo"
	"github.com/AntonStoeckl/callback-slot-go/testutil/observability/testdoubles"
)

func Test_RootCmd_Structure(t *testing.T) {
	root := newRootCmd(&app{v: viper.New()})

	assert.Equal(t, "zoo", root.Use)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-format"))

	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["demo"])
	assert.True(t, names["bench"])
}

func Test_Bench_PrintsReport(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(context.Background(), []string{"bench", "--iterations", "200", "--workers", "3"}, stdout, stderr)
	require.NoError(t, err)

	var report struct {
		RunID   string `json:"run_id"`
		Results []struct {
			Name       string `json:"name"`
			Mode       string `json:"mode"`
			Iterations int    `json:"iterations"`
			Workers    int    `json:"workers"`
		} `json:"results"`
	}
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal(stdout.Bytes(), &report))

	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Results, 6)

	for _, result := range report.Results {
		assert.Equal(t, 200, result.Iterations)
	}

	assert.Equal(t, "sequential", report.Results[0].Mode)
	assert.Equal(t, "parallel", report.Results[1].Mode)
	assert.Equal(t, 3, report.Results[1].Workers)
	assert.Equal(t, "The Hogle Zoo", report.Results[5].Name)
}

func Test_Demo_RunsForDuration(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	args := []string{"demo", "--duration", "100ms", "--interval", "10ms", "--log-format", "json"}
	err := run(context.Background(), args, stdout, stderr)
	require.NoError(t, err)

	logs := stderr.String()
	assert.Contains(t, logs, logMsgClientLost)
	assert.Contains(t, logs, "opening zoo")
	assert.Contains(t, logs, logMsgRound)
	assert.Contains(t, logs, "closing zoo")
	assert.Contains(t, logs, `"level":"INFO"`)
}

func Test_Run_InvalidLogFormat(t *testing.T) {
	err := run(context.Background(), []string{"bench", "--log-format", "xml"}, &bytes.Buffer{}, &bytes.Buffer{})

	assert.Error(t, err)
}

func Test_ReportRound_RecordsFoodStockGauge(t *testing.T) {
	metrics := testdoubles.NewMetricsCollectorSpy(true)
	a := &app{logger: slog.New(slog.DiscardHandler), metrics: metrics}

	_, err := a.reportRound(context.Background(), zoo.RoundReport{
		Round:     1,
		Remaining: map[string]int{"The Phoenix Zoo": 94, "The Hogle Zoo": 88},
	})
	require.NoError(t, err)

	byZoo := make(map[string]float64)
	for _, rec := range metrics.GetValueRecords() {
		assert.Equal(t, foodStockMetric, rec.Metric)
		byZoo[rec.Labels[labelZoo]] = rec.Value
	}

	assert.Equal(t, map[string]float64{"The Phoenix Zoo": 94, "The Hogle Zoo": 88}, byZoo)
	assert.Positive(t, metrics.ContextCalls())
}

func Test_ReportRound_WithoutMetrics_OnlyLogs(t *testing.T) {
	buf := &bytes.Buffer{}
	a := &app{logger: slog.New(slog.NewJSONHandler(buf, nil))}

	_, err := a.reportRound(context.Background(), zoo.RoundReport{Round: 2, Remaining: map[string]int{"z": 1}})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), logMsgRound)
}

func Test_ReportRound_AfterEveryZooRound(t *testing.T) {
	metrics := testdoubles.NewMetricsCollectorSpy(true)
	logger := slog.New(slog.DiscardHandler)
	a := &app{logger: logger, metrics: metrics}

	hogle := zoo.NewHogleManager(logger)
	z := zoo.NewZoo(rate.NewLimiter(rate.Inf, 1), logger, hogle)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	z.AfterRound().Register(func(ctx context.Context, report zoo.RoundReport) (struct{}, error) {
		defer cancel()
		return a.reportRound(ctx, report)
	})

	require.NoError(t, z.Run(ctx))

	records := metrics.GetValueRecords()
	require.Len(t, records, 1)
	assert.Equal(t, "The Hogle Zoo", records[0].Labels[labelZoo])
	assert.Equal(t, float64(zoo.DefaultFoodStock-12), records[0].Value)
}

func Test_HookOptions_WithOTel_ExportsInvocations(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	tracerProvider := sdktrace.NewTracerProvider()

	a := &app{
		logger: slog.New(slog.DiscardHandler),
		providers: &config.ObservabilityProviders{
			TracerProvider: tracerProvider,
			MeterProvider:  meterProvider,
		},
		metrics: oteladapters.NewMetricsCollector(meterProvider.Meter(instrumentationName)),
	}

	hook, err := observable.NewHook(
		callback.NewHandler(func(context.Context, string) (struct{}, error) { return struct{}{}, nil }),
		a.hookOptions("client_lost")...,
	)
	require.NoError(t, err)

	_, err = hook.Invoke(context.Background(), "visitor")
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	names := make(map[string]bool)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			names[m.Name] = true
		}
	}

	assert.True(t, names[observable.InvokeCallsMetric])
	assert.True(t, names[observable.InvokeDurationMetric])
}
