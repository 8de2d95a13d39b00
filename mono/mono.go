// Package mono implements the exactly-one-item arity: a stream that
// carries a single payload, combined with its terminal signal, or fails.
// It is the arity for a single request/response exchange.
package mono

import "github.com/lguimbarda/flux/core"

// Stream is an Emitter known to deliver exactly one item.
type Stream[T any] = core.Emitter[T]

// Receiver observes a Stream: exactly one of CompleteWith or Error.
type Receiver[T any] = core.MonoReceiver[T]

// ReceiverBase supplies the default Open behavior (request infinite
// demand immediately).
type ReceiverBase[T any] = core.MonoReceiverBase[T]

// Subscribe wires r onto s, enforcing the Mono contract with the given
// policy. If no policy is given, violations are ignored.
func Subscribe[T any](s Stream[T], r Receiver[T], policy ...core.ViolationPolicy) {
	s.Subscribe(core.WrapMono[T](r, resolvePolicy(policy)))
}

func resolvePolicy(policy []core.ViolationPolicy) core.ViolationPolicy {
	if len(policy) == 0 {
		return core.Ignore
	}
	return policy[0]
}

// Just returns a Stream that delivers value, then completes.
func Just[T any](value T) Stream[T] {
	return core.Single[T](value)
}

// Failed returns a Stream that fails immediately with err, without ever
// delivering an item.
func Failed[T any](err error) Stream[T] {
	return core.EmitFunc[T](func(r core.Receiver[T]) {
		s := &failedStage[T]{err: err}
		s.Init(r)
		r.Open(s)
	})
}

type failedStage[T any] struct {
	core.GeneratorStage[T]
	err error
}

func (s *failedStage[T]) Request(int64) { s.EmitError(s.err) }
func (s *failedStage[T]) RequestAll()    { s.EmitError(s.err) }
func (s *failedStage[T]) Close()         { s.MarkClosed() }

// Generate returns a Stream whose single item is produced by body,
// called fresh on every subscription. Emitting zero items or more than
// one is reported as an Error rather than silently coerced.
func Generate[T any](body func(core.Sink[T])) Stream[T] {
	return core.GenerateChecked[T](body, 1, true)
}
