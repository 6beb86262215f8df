// Package tracing provides the shared OTel tracer helper.
//
// When no TracerProvider is registered (tests, local runs without an OTLP
// endpoint) the global no-op provider is used and every call is inert.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "leafvision"

// Start creates a span as a child of the span in ctx, or a root span when ctx
// carries none. The caller must call span.End().
//
//	ctx, span := tracing.Start(ctx, "page.generate",
//	    attribute.String("leafvision.session.id", id),
//	)
//	defer span.End()
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}

// Fail records err on span and marks it as failed.
func Fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
