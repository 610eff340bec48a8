// Package oteladapters provides OpenTelemetry implementations of the callback observability interfaces.
//
// They let observable.Hook report invocation metrics, spans and logs to an OpenTelemetry
// pipeline without the core callback package depending on OpenTelemetry:
//
//	meter := otel.Meter("zoo")
//	tracer := otel.Tracer("zoo")
//
//	hook, err := observable.NewHook(slot,
//		observable.WithName("client_lost"),
//		observable.WithMetrics(oteladapters.NewMetricsCollector(meter)),
//		observable.WithTracing(oteladapters.NewTracingCollector(tracer)),
//		observable.WithContextualLogging(oteladapters.NewSlogBridgeLogger("zoo")),
//	)
package oteladapters
