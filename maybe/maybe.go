// Package maybe implements the zero-or-one-item arity: a stream that
// carries at most one payload, distinguishing "completed with a value"
// from "completed empty" at the type level. It is the arity for a lookup
// that may or may not find something.
package maybe

import "github.com/lguimbarda/flux/core"

// Stream is an Emitter known to deliver at most one item.
type Stream[T any] = core.Emitter[T]

// Receiver observes a Stream: exactly one of CompleteWith, CompleteEmpty,
// or Error.
type Receiver[T any] = core.MaybeReceiver[T]

// ReceiverBase supplies the default Open behavior (request infinite
// demand immediately).
type ReceiverBase[T any] = core.MaybeReceiverBase[T]

// Subscribe wires r onto s, enforcing the Maybe contract with the given
// policy. If no policy is given, violations are ignored.
func Subscribe[T any](s Stream[T], r Receiver[T], policy ...core.ViolationPolicy) {
	s.Subscribe(core.WrapMaybe[T](r, resolvePolicy(policy)))
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

// Empty returns a Stream that completes empty as soon as it is
// subscribed to and requested.
func Empty[T any]() Stream[T] {
	return core.Empty[T]()
}

// FromPointer returns a Stream that delivers *value if non-nil, or
// completes empty if value is nil. It is the idiomatic Go substitute for
// wrapping an optional payload in an algebraic Option type.
func FromPointer[T any](value *T) Stream[T] {
	if value == nil {
		return Empty[T]()
	}
	return Just(*value)
}

// Generate returns a Stream whose item, if any, is produced by body,
// called fresh on every subscription. body may call Emit at most once;
// returning without emitting means the stream completes empty. Emitting
// more than once is reported as an Error.
func Generate[T any](body func(core.Sink[T])) Stream[T] {
	return core.GenerateChecked[T](body, 1, false)
}
