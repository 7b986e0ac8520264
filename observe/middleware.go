package observe

import (
	"context"
	"fmt"
	"time"

	"github.com/wafkit/secvars/collection"
)

// Instrumented decorates a collection with tracing, metrics, and logging.
// The wrapped collection's semantics are unchanged; every resolution is
// spanned and timed, every mutation counted. The raw peek is deliberately
// left uninstrumented so the fast path stays fast.
//
// Contract:
//   - Concurrency: safe for concurrent use if the wrapped collection is.
//   - Errors: errors from the wrapped collection are recorded and propagated
//     unchanged.
type Instrumented struct {
	coll    collection.Collection
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// Instrument wraps coll with the given observability components. Nil tracer,
// metrics, or logger fall back to no-ops.
func Instrument(coll collection.Collection, tracer Tracer, metrics Metrics, logger Logger) (*Instrumented, error) {
	if coll == nil {
		return nil, ErrNilCollection
	}
	if tracer == nil {
		tracer = newNoopTracer()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = &noopLogger{}
	}
	return &Instrumented{
		coll:    coll,
		tracer:  tracer,
		metrics: metrics,
		logger:  logger.WithCollection(coll.Name()),
	}, nil
}

// InstrumentFromObserver wraps coll using an Observer's tracer, meter, and
// logger. This is the common construction path.
func InstrumentFromObserver(coll collection.Collection, obs Observer) (*Instrumented, error) {
	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return Instrument(coll, newTracer(obs.Tracer()), metrics, obs.Logger())
}

// Unwrap returns the underlying collection.
func (i *Instrumented) Unwrap() collection.Collection {
	return i.coll
}

func (i *Instrumented) Name() string {
	return i.coll.Name()
}

func (i *Instrumented) Len() int {
	return i.coll.Len()
}

func (i *Instrumented) Store(key, value string) {
	i.coll.Store(key, value)
	i.metrics.RecordMutation(context.Background(), i.coll.Name(), "store")
}

func (i *Instrumented) StoreOrUpdateFirst(key, value string) bool {
	ok := i.coll.StoreOrUpdateFirst(key, value)
	i.metrics.RecordMutation(context.Background(), i.coll.Name(), "store_or_update_first")
	return ok
}

func (i *Instrumented) UpdateFirst(key, value string) bool {
	ok := i.coll.UpdateFirst(key, value)
	i.metrics.RecordMutation(context.Background(), i.coll.Name(), "update_first")
	return ok
}

func (i *Instrumented) Del(key string) {
	i.coll.Del(key)
	i.metrics.RecordMutation(context.Background(), i.coll.Name(), "del")
}

func (i *Instrumented) SetExpiry(key string, seconds int32) {
	i.coll.SetExpiry(key, seconds)
	i.metrics.RecordMutation(context.Background(), i.coll.Name(), "set_expiry")
}

// ResolveFirstRaw delegates without telemetry; see the type comment.
func (i *Instrumented) ResolveFirstRaw(key string) (string, bool) {
	return i.coll.ResolveFirstRaw(key)
}

func (i *Instrumented) ResolveSingleMatch(key string) []collection.Variable {
	out, _ := i.resolve(collection.ModeSingle, func() ([]collection.Variable, error) {
		return i.coll.ResolveSingleMatch(key), nil
	})
	return out
}

func (i *Instrumented) ResolveMultiMatches(key string, ke collection.KeyExclusions) []collection.Variable {
	out, _ := i.resolve(collection.ModeMulti, func() ([]collection.Variable, error) {
		return i.coll.ResolveMultiMatches(key, ke), nil
	})
	return out
}

func (i *Instrumented) ResolveRegularExpression(expr string, ke collection.KeyExclusions) ([]collection.Variable, error) {
	return i.resolve(collection.ModeRegex, func() ([]collection.Variable, error) {
		return i.coll.ResolveRegularExpression(expr, ke)
	})
}

func (i *Instrumented) Resolve(mode collection.Mode, nameOrPattern string, ke collection.KeyExclusions) ([]collection.Variable, error) {
	switch mode {
	case collection.ModeSingle:
		return i.ResolveSingleMatch(nameOrPattern), nil
	case collection.ModeMulti:
		return i.ResolveMultiMatches(nameOrPattern, ke), nil
	case collection.ModeRegex:
		return i.ResolveRegularExpression(nameOrPattern, ke)
	default:
		return nil, fmt.Errorf("%w: %d", collection.ErrUnknownMode, int(mode))
	}
}

func (i *Instrumented) resolve(mode collection.Mode, fn func() ([]collection.Variable, error)) ([]collection.Variable, error) {
	ctx, span := i.tracer.StartResolve(context.Background(), i.coll.Name(), mode)

	start := time.Now()
	out, err := fn()
	duration := time.Since(start)

	i.tracer.EndSpan(span, err)
	i.metrics.RecordResolution(ctx, i.coll.Name(), mode, duration, len(out), err)

	if err != nil {
		i.logger.Error(ctx, "resolution failed",
			Field{Key: "mode", Value: mode.String()},
			Field{Key: "error", Value: err.Error()},
		)
	} else {
		i.logger.Debug(ctx, "resolution completed",
			Field{Key: "mode", Value: mode.String()},
			Field{Key: "hits", Value: len(out)},
			Field{Key: "duration_ms", Value: float64(duration.Microseconds()) / 1000.0},
		)
	}

	return out, err
}

// Ensure Instrumented implements Collection.
var _ collection.Collection = (*Instrumented)(nil)
