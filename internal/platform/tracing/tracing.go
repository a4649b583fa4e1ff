// Package tracing wraps the global OpenTelemetry tracer for service spans.
// Without an installed provider the spans are no-ops.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationPrefix = "carenest/"

// Tracer returns the named tracer for a module, e.g. Tracer("booking").
func Tracer(module string) trace.Tracer {
	return otel.Tracer(instrumentationPrefix + module)
}

// Start opens a span for one service operation.
func Start(ctx context.Context, tracer trace.Tracer, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, op, trace.WithAttributes(attrs...))
}

// End records err on the span, if any, and closes it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// TraceID returns the current trace id, or "" when ctx carries no sampled span.
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
