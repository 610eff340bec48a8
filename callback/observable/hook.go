package observable

import (
	"context"
	"fmt"
	"time"

	"github.com/AntonStoeckl/callback-slot-go/callback"
)

const defaultHookName = "callback"

// Hook instruments invocations of a callback.Handler with metrics, tracing and logging.
// It holds no callable of its own; Register and IsSet act on the wrapped slot.
type Hook[A, R any] struct {
	slot             *callback.Handler[A, R]
	name             string
	metricsCollector callback.MetricsCollector
	tracingCollector callback.TracingCollector
	log              logger
}

// NewHook wraps slot. It returns callback.ErrNilSlot for a nil slot, or the first error of an option.
func NewHook[A, R any](slot *callback.Handler[A, R], opts ...Option) (*Hook[A, R], error) {
	if slot == nil {
		return nil, callback.ErrNilSlot
	}

	cfg := hookConfig{name: defaultHookName}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Hook[A, R]{
		slot:             slot,
		name:             cfg.name,
		metricsCollector: cfg.metricsCollector,
		tracingCollector: cfg.tracingCollector,
		log:              logger{plain: cfg.logger, contextual: cfg.contextualLogger},
	}, nil
}

// Name returns the name used in labels, span attributes and logs.
func (h *Hook[A, R]) Name() string {
	return h.name
}

// Register replaces the callable of the wrapped slot.
func (h *Hook[A, R]) Register(fn callback.HandlerFunc[A, R]) {
	h.slot.Register(fn)
}

// IsSet reports whether the wrapped slot currently holds a callable.
func (h *Hook[A, R]) IsSet() bool {
	return h.slot.IsSet()
}

// Invoke runs the wrapped slot and records the outcome.
//
// The snapshot is taken exactly once, so the instrumentation always describes the callable
// that actually ran. A panic from the callable is recorded with StatusPanic, its span is
// finished, and then it is re-raised with the same value.
func (h *Hook[A, R]) Invoke(ctx context.Context, arg A) (R, error) {
	fn, ok := h.slot.Load()
	if !ok {
		recordMetrics(ctx, h.metricsCollector, h.name, StatusUnset, 0, false)
		h.log.debug(ctx, LogMsgInvokeUnset, LogAttrCallbackName, h.name)

		var zero R
		return zero, nil
	}

	start := time.Now()
	ctx, span := startSpan(ctx, h.tracingCollector, h.name)
	h.log.debug(ctx, LogMsgInvokeStarted, LogAttrCallbackName, h.name)

	defer func() {
		if r := recover(); r != nil {
			h.recordPanic(ctx, span, time.Since(start), r)
			panic(r)
		}
	}()

	result, err := fn(ctx, arg)

	duration := time.Since(start)
	status := StatusFromError(err)

	recordMetrics(ctx, h.metricsCollector, h.name, status, duration, true)
	finishSpan(h.tracingCollector, span, status, duration, err)

	if err != nil {
		h.log.error(ctx, LogMsgInvokeFailed,
			LogAttrCallbackName, h.name,
			LogAttrStatus, status,
			LogAttrError, err.Error())

		return result, err
	}

	h.log.info(ctx, LogMsgInvokeCompleted,
		LogAttrCallbackName, h.name,
		LogAttrDurationMS, ToMilliseconds(duration))

	return result, nil
}

func (h *Hook[A, R]) recordPanic(ctx context.Context, span callback.SpanContext, duration time.Duration, recovered any) {
	err := fmt.Errorf("%w: %v", ErrCallbackPanicked, recovered)

	recordMetrics(ctx, h.metricsCollector, h.name, StatusPanic, duration, true)
	finishSpan(h.tracingCollector, span, StatusPanic, duration, err)
	h.log.error(ctx, LogMsgInvokeFailed,
		LogAttrCallbackName, h.name,
		LogAttrStatus, StatusPanic,
		LogAttrError, err.Error())
}
