package oteladapters

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/AntonStoeckl/callback-slot-go/callback"
)

// MetricsCollector implements callback.ContextualMetricsCollector with the OpenTelemetry metrics API.
// Durations go to Float64Histograms in seconds, counters to Int64Counters and values to Float64Gauges.
// One instrument is created per metric name on first use and reused afterwards.
type MetricsCollector struct {
	histograms instrumentCache[metric.Float64Histogram]
	counters   instrumentCache[metric.Int64Counter]
	gauges     instrumentCache[metric.Float64Gauge]
}

// NewMetricsCollector creates a collector whose instruments come from meter.
func NewMetricsCollector(meter metric.Meter) *MetricsCollector {
	return &MetricsCollector{
		histograms: newInstrumentCache(func(name string) (metric.Float64Histogram, error) {
			return meter.Float64Histogram(name,
				metric.WithDescription("Callback invocation duration"),
				metric.WithUnit("s"))
		}),
		counters: newInstrumentCache(func(name string) (metric.Int64Counter, error) {
			return meter.Int64Counter(name, metric.WithDescription("Callback invocations"))
		}),
		gauges: newInstrumentCache(func(name string) (metric.Float64Gauge, error) {
			return meter.Float64Gauge(name, metric.WithDescription("Callback value"))
		}),
	}
}

// RecordDuration is RecordDurationContext without a trace to correlate with.
func (m *MetricsCollector) RecordDuration(metricName string, duration time.Duration, labels map[string]string) {
	m.RecordDurationContext(context.TODO(), metricName, duration, labels)
}

// RecordDurationContext records duration in seconds.
func (m *MetricsCollector) RecordDurationContext(ctx context.Context, metricName string, duration time.Duration, labels map[string]string) {
	if h, ok := m.histograms.get(metricName); ok {
		h.Record(ctx, duration.Seconds(), withLabels(labels))
	}
}

// IncrementCounter is IncrementCounterContext without a trace to correlate with.
func (m *MetricsCollector) IncrementCounter(metricName string, labels map[string]string) {
	m.IncrementCounterContext(context.TODO(), metricName, labels)
}

// IncrementCounterContext adds one.
func (m *MetricsCollector) IncrementCounterContext(ctx context.Context, metricName string, labels map[string]string) {
	if c, ok := m.counters.get(metricName); ok {
		c.Add(ctx, 1, withLabels(labels))
	}
}

// RecordValue is RecordValueContext without a trace to correlate with.
func (m *MetricsCollector) RecordValue(metricName string, value float64, labels map[string]string) {
	m.RecordValueContext(context.TODO(), metricName, value, labels)
}

// RecordValueContext sets the gauge to value.
func (m *MetricsCollector) RecordValueContext(ctx context.Context, metricName string, value float64, labels map[string]string) {
	if g, ok := m.gauges.get(metricName); ok {
		g.Record(ctx, value, withLabels(labels))
	}
}

// instrumentCache creates instruments of one kind by name, at most once per name.
// A name whose creation failed is retried on the next call.
type instrumentCache[I any] struct {
	mu     sync.Mutex
	byName map[string]I
	create func(name string) (I, error)
}

func newInstrumentCache[I any](create func(name string) (I, error)) instrumentCache[I] {
	return instrumentCache[I]{byName: make(map[string]I), create: create}
}

func (c *instrumentCache[I]) get(name string) (I, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if instrument, ok := c.byName[name]; ok {
		return instrument, true
	}

	instrument, err := c.create(name)
	if err != nil {
		var zero I
		return zero, false
	}

	c.byName[name] = instrument

	return instrument, true
}

func withLabels(labels map[string]string) metric.MeasurementOption {
	return metric.WithAttributes(toAttributes(labels)...)
}

func toAttributes(labels map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for key, value := range labels {
		attrs = append(attrs, attribute.String(key, value))
	}

	return attrs
}

var _ callback.ContextualMetricsCollector = (*MetricsCollector)(nil)
