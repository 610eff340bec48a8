package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/callback-slot-go/callback"
	"github.com/AntonStoeckl/callback-slot-go/callback/observable"
)

// TracingCollector implements callback.TracingCollector using an OpenTelemetry tracer.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a tracing collector. The tracer should come from your TracerProvider.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts a span named name with attrs and returns the derived context.
func (t *TracingCollector) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, callback.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name, trace.WithAttributes(toAttributes(attrs)...))

	return spanCtx, &OTelSpanContext{span: span}
}

// FinishSpan sets the final attributes and status and ends the span.
// Span contexts not created by this collector are ignored.
func (t *TracingCollector) FinishSpan(spanCtx callback.SpanContext, status string, attrs map[string]string) {
	otelSpanCtx, ok := spanCtx.(*OTelSpanContext)
	if !ok {
		return
	}

	otelSpanCtx.span.SetAttributes(toAttributes(attrs)...)
	otelSpanCtx.setSpanStatus(status)
	otelSpanCtx.span.End()
}

// OTelSpanContext implements callback.SpanContext by wrapping an OpenTelemetry span.
type OTelSpanContext struct {
	span trace.Span
}

// SetStatus maps a status string onto the span status.
func (s *OTelSpanContext) SetStatus(status string) {
	s.setSpanStatus(status)
}

// AddAttribute adds a string attribute to the span.
func (s *OTelSpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

// spanStatuses maps hook statuses onto span status codes and descriptions.
var spanStatuses = map[string]struct {
	code        codes.Code
	description string
}{
	observable.StatusSuccess:  {codes.Ok, ""},
	observable.StatusError:    {codes.Error, "callback returned an error"},
	observable.StatusCanceled: {codes.Error, "callback canceled"},
	observable.StatusTimeout:  {codes.Error, "callback timed out"},
	observable.StatusPanic:    {codes.Error, "callback panicked"},
}

// setSpanStatus leaves the span status unset for statuses it does not know and records them as an attribute.
func (s *OTelSpanContext) setSpanStatus(status string) {
	mapped, ok := spanStatuses[status]
	if !ok {
		s.span.SetAttributes(attribute.String(observable.LogAttrStatus, status))
		return
	}

	s.span.SetStatus(mapped.code, mapped.description)
}

var (
	_ callback.TracingCollector = (*TracingCollector)(nil)
	_ callback.SpanContext      = (*OTelSpanContext)(nil)
)
