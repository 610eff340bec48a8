// Package testdoubles provides spies for the callback observability interfaces.
//
//   - MetricsCollectorSpy: captures duration, counter and value recordings
//   - TracingCollectorSpy: captures started and finished spans
//   - ContextualLoggerSpy: captures context-aware log calls
//   - LoggerSpy: captures plain log calls
//
// All spies are safe for concurrent use, so they can observe hooks invoked from many goroutines.
package testdoubles
