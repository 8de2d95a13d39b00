package observe

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// Meters bundles the OpenTelemetry instruments a subscription reports
// through. Any field left nil is simply not recorded to.
type Meters struct {
	Items  metric.Int64Counter
	Errors metric.Int64Counter
}

// NewMeters creates the counters this package records to, against the
// given meter. Use go.opentelemetry.io/otel/metric/noop for tests that
// don't care about the recorded values.
func NewMeters(meter metric.Meter) (Meters, error) {
	items, err := meter.Int64Counter("flux.items", metric.WithDescription("items delivered to a subscriber"))
	if err != nil {
		return Meters{}, err
	}
	errs, err := meter.Int64Counter("flux.errors", metric.WithDescription("subscriptions that terminated with an error"))
	if err != nil {
		return Meters{}, err
	}
	return Meters{Items: items, Errors: errs}, nil
}

// WithMetrics attaches hooks for type T that record into m.
func WithMetrics[T any](ctx context.Context, m Meters) context.Context {
	return WithHooks(ctx, Hooks[T]{
		OnReceive: func(T) {
			if m.Items != nil {
				m.Items.Add(ctx, 1)
			}
		},
		OnError: func(error) {
			if m.Errors != nil {
				m.Errors.Add(ctx, 1)
			}
		},
	})
}

// ValueCounter counts items delivered to a subscription.
type ValueCounter struct{ count int64 }

// Count returns the current count. Not safe to read concurrently with
// the subscription it was attached to, since the signal protocol itself
// is single-threaded.
func (c *ValueCounter) Count() int64 { return c.count }

// WithValueCounter attaches a counting hook for type T and returns the
// counter it feeds.
func WithValueCounter[T any](ctx context.Context) (context.Context, *ValueCounter) {
	counter := &ValueCounter{}
	return WithHooks(ctx, Hooks[T]{OnReceive: func(T) { counter.count++ }}), counter
}

// ErrorCollector collects every error a subscription reports.
type ErrorCollector struct{ errors []error }

// Errors returns a copy of the collected errors.
func (c *ErrorCollector) Errors() []error {
	out := make([]error, len(c.errors))
	copy(out, c.errors)
	return out
}

// WithErrorCollector attaches an error-collecting hook for type T and
// returns the collector it feeds.
func WithErrorCollector[T any](ctx context.Context) (context.Context, *ErrorCollector) {
	collector := &ErrorCollector{}
	ctx = WithHooks(ctx, Hooks[T]{
		OnError: func(err error) { collector.errors = append(collector.errors, err) },
	})
	return ctx, collector
}
