package observable

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AntonStoeckl/callback-slot-go/callback"
)

const (
	// InvokeDurationMetric tracks the duration of invocations that ran a callable.
	InvokeDurationMetric = "callback_invoke_duration_seconds"

	// InvokeCallsMetric counts all invocations, labeled by status.
	InvokeCallsMetric = "callback_invoke_calls_total"

	// SpanNameInvoke is the tracing span name for an invocation.
	SpanNameInvoke = "callback.invoke"

	// StatusSuccess indicates the callable returned a nil error.
	StatusSuccess = "success"

	// StatusError indicates the callable returned an error.
	StatusError = "error"

	// StatusCanceled indicates the callable returned context.Canceled.
	StatusCanceled = "canceled"

	// StatusTimeout indicates the callable returned context.DeadlineExceeded.
	StatusTimeout = "timeout"

	// StatusPanic indicates the callable panicked; the panic is re-raised after recording.
	StatusPanic = "panic"

	// StatusUnset indicates nobody was registered; nothing ran.
	StatusUnset = "unset"

	// LogMsgInvokeStarted is logged before the callable runs.
	LogMsgInvokeStarted = "callback invoke started"

	// LogMsgInvokeCompleted is logged when the callable returned without error.
	LogMsgInvokeCompleted = "callback invoke completed"

	// LogMsgInvokeFailed is logged when the callable returned an error.
	LogMsgInvokeFailed = "callback invoke failed"

	// LogMsgInvokeUnset is logged when the slot was empty.
	LogMsgInvokeUnset = "callback invoke skipped: no callable registered"

	// LogAttrCallbackName identifies the hook in logs, metric labels and span attributes.
	LogAttrCallbackName = "callback_name"

	// LogAttrStatus carries the invocation status.
	LogAttrStatus = "status"

	// LogAttrDurationMS carries the invocation duration in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// LogAttrError carries the error message.
	LogAttrError = "error"
)

// ErrCallbackPanicked describes a panicking callable in span attributes and logs.
var ErrCallbackPanicked = errors.New("callback panicked")

// BuildLabels creates the metric labels for one invocation.
func BuildLabels(name, status string) map[string]string {
	return map[string]string{
		LogAttrCallbackName: name,
		LogAttrStatus:       status,
	}
}

// StatusFromError classifies an error returned by a callable.
func StatusFromError(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, context.Canceled):
		return StatusCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout
	default:
		return StatusError
	}
}

// ToMilliseconds converts a duration to float64 milliseconds.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

func recordMetrics(ctx context.Context, collector callback.MetricsCollector, name, status string, duration time.Duration, ran bool) {
	if collector == nil {
		return
	}

	labels := BuildLabels(name, status)

	if contextualCollector, ok := collector.(callback.ContextualMetricsCollector); ok {
		if ran {
			contextualCollector.RecordDurationContext(ctx, InvokeDurationMetric, duration, labels)
		}
		contextualCollector.IncrementCounterContext(ctx, InvokeCallsMetric, labels)

		return
	}

	if ran {
		collector.RecordDuration(InvokeDurationMetric, duration, labels)
	}
	collector.IncrementCounter(InvokeCallsMetric, labels)
}

func startSpan(ctx context.Context, collector callback.TracingCollector, name string) (context.Context, callback.SpanContext) {
	if collector == nil {
		return ctx, nil
	}

	return collector.StartSpan(ctx, SpanNameInvoke, map[string]string{LogAttrCallbackName: name})
}

func finishSpan(collector callback.TracingCollector, span callback.SpanContext, status string, duration time.Duration, err error) {
	if collector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrDurationMS: fmt.Sprintf("%.2f", ToMilliseconds(duration)),
	}
	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	collector.FinishSpan(span, status, attrs)
}

// logger bundles the optional plain and contextual loggers; the contextual one wins when both are set.
type logger struct {
	plain      callback.Logger
	contextual callback.ContextualLogger
}

func (l logger) debug(ctx context.Context, msg string, args ...any) {
	switch {
	case l.contextual != nil:
		l.contextual.DebugContext(ctx, msg, args...)
	case l.plain != nil:
		l.plain.Debug(msg, args...)
	}
}

func (l logger) info(ctx context.Context, msg string, args ...any) {
	switch {
	case l.contextual != nil:
		l.contextual.InfoContext(ctx, msg, args...)
	case l.plain != nil:
		l.plain.Info(msg, args...)
	}
}

func (l logger) error(ctx context.Context, msg string, args ...any) {
	switch {
	case l.contextual != nil:
		l.contextual.ErrorContext(ctx, msg, args...)
	case l.plain != nil:
		l.plain.Error(msg, args...)
	}
}
