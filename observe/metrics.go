package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/wafkit/secvars/collection"
)

// Metrics records store activity.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordResolution records one resolution call with its duration, the
	// number of records returned, and error status.
	RecordResolution(ctx context.Context, coll string, mode collection.Mode, duration time.Duration, hits int, err error)

	// RecordMutation records one mutation call (store, update, del, expiry).
	RecordMutation(ctx context.Context, coll string, op string)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	resolveCount metric.Int64Counter
	resolveErrs  metric.Int64Counter
	resolveHits  metric.Int64Counter
	durationHist metric.Float64Histogram
	mutationOps  metric.Int64Counter
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	resolveCount, err := meter.Int64Counter(
		"secvars.resolve.total",
		metric.WithDescription("Total number of resolution calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	resolveErrs, err := meter.Int64Counter(
		"secvars.resolve.errors",
		metric.WithDescription("Total number of failed resolution calls"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	resolveHits, err := meter.Int64Counter(
		"secvars.resolve.hits",
		metric.WithDescription("Total number of records returned by resolution calls"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"secvars.resolve.duration_ms",
		metric.WithDescription("Resolution call duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	mutationOps, err := meter.Int64Counter(
		"secvars.store.ops",
		metric.WithDescription("Total number of store mutation calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		resolveCount: resolveCount,
		resolveErrs:  resolveErrs,
		resolveHits:  resolveHits,
		durationHist: durationHist,
		mutationOps:  mutationOps,
	}, nil
}

// RecordResolution records metrics for one resolution call.
func (m *metricsImpl) RecordResolution(ctx context.Context, coll string, mode collection.Mode, duration time.Duration, hits int, err error) {
	opt := metric.WithAttributes(
		attribute.String("collection", coll),
		attribute.String("mode", mode.String()),
	)

	m.resolveCount.Add(ctx, 1, opt)
	if err != nil {
		m.resolveErrs.Add(ctx, 1, opt)
	}
	m.resolveHits.Add(ctx, int64(hits), opt)
	m.durationHist.Record(ctx, float64(duration.Microseconds())/1000.0, opt)
}

// RecordMutation records metrics for one mutation call.
func (m *metricsImpl) RecordMutation(ctx context.Context, coll string, op string) {
	m.mutationOps.Add(ctx, 1, metric.WithAttributes(
		attribute.String("collection", coll),
		attribute.String("op", op),
	))
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (noopMetrics) RecordResolution(ctx context.Context, coll string, mode collection.Mode, duration time.Duration, hits int, err error) {
}

func (noopMetrics) RecordMutation(ctx context.Context, coll string, op string) {}
