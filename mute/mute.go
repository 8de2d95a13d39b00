// Package mute implements the zero-item arity: a stream that never
// carries a payload and can only complete or fail. It is the arity for
// actions whose only observable outcome is "done" or "failed" — a
// delete, a flush, a fire-and-forget notification.
package mute

import "github.com/lguimbarda/flux/core"

// Stream is an Emitter known to deliver no items.
type Stream[T any] = core.Emitter[T]

// Receiver observes a Stream: at most one of Complete or Error, never an
// item.
type Receiver[T any] = core.MuteReceiver[T]

// ReceiverBase supplies the default Open behavior (request infinite
// demand immediately). Embed it in a Receiver that doesn't need to
// shape demand itself.
type ReceiverBase = core.MuteReceiverBase

// Subscribe wires r onto s, enforcing the Mute contract with the given
// policy. If no policy is given, violations are ignored.
func Subscribe[T any](s Stream[T], r Receiver[T], policy ...core.ViolationPolicy) {
	s.Subscribe(core.WrapMute[T](r, resolvePolicy(policy)))
}

func resolvePolicy(policy []core.ViolationPolicy) core.ViolationPolicy {
	if len(policy) == 0 {
		return core.Ignore
	}
	return policy[0]
}

// Empty returns a Stream that completes as soon as it is subscribed to
// and requested.
func Empty[T any]() Stream[T] {
	return core.Empty[T]()
}

// Never returns a Stream that never completes and never fails.
func Never[T any]() Stream[T] {
	return core.Never[T]()
}

// Action returns a Stream that runs fn once per subscription and
// completes, or fails if fn returns an error.
func Action[T any](fn func() error) Stream[T] {
	return core.EmitFunc[T](func(r core.Receiver[T]) {
		s := &actionStage[T]{fn: fn}
		s.Init(r)
		r.Open(s)
	})
}

type actionStage[T any] struct {
	core.GeneratorStage[T]
	fn  func() error
	ran bool
}

func (s *actionStage[T]) Request(int64) { s.run() }
func (s *actionStage[T]) RequestAll()    { s.run() }
func (s *actionStage[T]) Close()         { s.MarkClosed() }

func (s *actionStage[T]) run() {
	if s.ran || s.Closed() {
		return
	}
	s.ran = true
	if err := s.fn(); err != nil {
		s.EmitError(err)
		return
	}
	s.EmitComplete()
}
