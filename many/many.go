// Package many implements the unrestricted arity: a stream that carries
// zero or more items before completing or failing. It is the arity
// general-purpose pipelines are built on; the other three arities are
// special cases of it with a narrower promise.
package many

import (
	"iter"

	"github.com/lguimbarda/flux/core"
)

// Stream is an Emitter of any number of items.
type Stream[T any] = core.Emitter[T]

// Receiver observes a Stream: any number of Receive calls, then at most
// one of Complete or Error.
type Receiver[T any] = core.ManyReceiver[T]

// ReceiverBase supplies the default Open behavior (request infinite
// demand immediately).
type ReceiverBase[T any] = core.ManyReceiverBase[T]

// Subscribe wires r onto s, enforcing the Many contract with the given
// policy. If no policy is given, violations are ignored.
func Subscribe[T any](s Stream[T], r Receiver[T], policy ...core.ViolationPolicy) {
	s.Subscribe(core.WrapMany[T](r, resolvePolicy(policy)))
}

func resolvePolicy(policy []core.ViolationPolicy) core.ViolationPolicy {
	if len(policy) == 0 {
		return core.Ignore
	}
	return policy[0]
}

// Empty returns a Stream that completes immediately with no items.
func Empty[T any]() Stream[T] {
	return core.Empty[T]()
}

// Never returns a Stream that never emits and never terminates.
func Never[T any]() Stream[T] {
	return core.Never[T]()
}

// Just returns a Stream that delivers the given items, in order, then
// completes.
func Just[T any](items ...T) Stream[T] {
	return FromSlice(items)
}

// FromSlice returns a Stream that delivers a copy of items, in order,
// then completes. Items are pulled lazily, one per unit of demand.
func FromSlice[T any](items []T) Stream[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return core.Iterable[T](func() core.Iterator[T] { return core.NewSliceIterator(cp) })
}

// FromIterator returns a Stream that delivers whatever it pulls out of
// it, in order, then completes. Unlike FromSlice/FromSeq/Just, it is
// given a single already-instantiated Iterator rather than a way to
// derive a fresh one, so the returned Stream supports exactly one
// subscription — subscribe it twice and the second subscriber sees
// whatever the first left behind.
func FromIterator[T any](it core.Iterator[T]) Stream[T] {
	return core.Iterable[T](func() core.Iterator[T] { return it })
}

// FromSeq returns a Stream that delivers every value seq yields, in
// order, then completes. seq is driven on its own goroutine and runs at
// most one value ahead of demand: after each delivered item the source
// asks seq for its next value, so completion follows the last item
// without another request. seq itself may be called again on
// each subscription, so the returned Stream supports any number of
// independent subscriptions.
func FromSeq[T any](seq iter.Seq[T]) Stream[T] {
	return core.Iterable[T](func() core.Iterator[T] { return core.NewSeqIterator(seq) })
}

// Generate returns a Stream whose items are produced by body, called
// fresh on every subscription. body may call Emit any number of times.
func Generate[T any](body func(core.Sink[T])) Stream[T] {
	return core.Generate[T](body)
}
