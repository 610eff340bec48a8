package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/callback-slot-go/example/shared/config"
)

func Test_Load_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 500*time.Millisecond, cfg.FeedInterval)
	assert.Equal(t, 1, cfg.FeedBurst)
	assert.Equal(t, 1_000_000, cfg.Bench.Iterations)
	assert.Equal(t, 4, cfg.Bench.Workers)
	assert.False(t, cfg.OTel.Enabled)
	assert.Equal(t, "zoo", cfg.OTel.ServiceName)
	assert.Equal(t, "localhost:4317", cfg.OTel.LogEndpoint)
}

func Test_Load_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("ZOO_LOG_LEVEL", "debug")
	t.Setenv("ZOO_FEED_INTERVAL", "2s")
	t.Setenv("ZOO_BENCH_WORKERS", "16")
	t.Setenv("ZOO_OTEL_ENABLED", "true")

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.FeedInterval)
	assert.Equal(t, 16, cfg.Bench.Workers)
	assert.True(t, cfg.OTel.Enabled)
}

func Test_Load_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoo.yaml")
	content := `
log_format: json
feed_burst: 3
bench:
  iterations: 500
otel:
  trace_endpoint: jaeger:4317
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 3, cfg.FeedBurst)
	assert.Equal(t, 500, cfg.Bench.Iterations)
	assert.Equal(t, "jaeger:4317", cfg.OTel.TraceEndpoint)
	assert.Equal(t, "localhost:4317", cfg.OTel.MetricEndpoint)
}

func Test_Load_MissingConfigFile(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func Test_Load_InvalidValues(t *testing.T) {
	t.Setenv("ZOO_FEED_BURST", "0")
	t.Setenv("ZOO_BENCH_ITERATIONS", "-1")

	_, err := config.Load(viper.New(), "")

	assert.ErrorIs(t, err, config.ErrInvalidFeedBurst)
	assert.ErrorIs(t, err, config.ErrInvalidIterations)
	assert.NotErrorIs(t, err, config.ErrInvalidWorkers)
}

func Test_Validate_OTelNeedsServiceName(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	cfg.OTel.Enabled = true
	cfg.OTel.ServiceName = ""

	assert.ErrorIs(t, cfg.Validate(), config.ErrMissingServiceName)
}
