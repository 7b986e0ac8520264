package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/wafkit/secvars/collection"
)

// Tracer wraps OpenTelemetry tracing with resolution-specific span
// management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartResolve starts a span for one resolution call.
	StartResolve(ctx context.Context, coll string, mode collection.Mode) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

type tracerImpl struct {
	tracer trace.Tracer
}

// newTracer creates a Tracer wrapping the given OpenTelemetry tracer.
func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

func (t *tracerImpl) StartResolve(ctx context.Context, coll string, mode collection.Mode) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "secvars.resolve."+mode.String(),
		trace.WithAttributes(
			attribute.String("collection", coll),
			attribute.String("mode", mode.String()),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

func newNoopTracer() Tracer {
	return &noopTracer{noop: tracenoop.NewTracerProvider().Tracer("noop")}
}

func (t *noopTracer) StartResolve(ctx context.Context, coll string, mode collection.Mode) (context.Context, trace.Span) {
	return t.noop.Start(ctx, "secvars.resolve."+mode.String())
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}
