// Package convert provides the widening and narrowing conversions
// between arities. Widening (a promise that also satisfies a weaker
// promise) never touches the signals themselves — the same pipeline is
// reused verbatim under a wider-arity name. Narrowing (a promise that
// requires more than the source guarantees) needs real logic to resolve
// the gap: a fallback value, a completion callback, or simply discarding
// items.
package convert

import (
	"github.com/lguimbarda/flux/core"
	"github.com/lguimbarda/flux/many"
	"github.com/lguimbarda/flux/maybe"
	"github.com/lguimbarda/flux/mono"
	"github.com/lguimbarda/flux/mute"
)

// MuteToMaybe widens a Mute stream to Maybe: it still never delivers an
// item, so it always completes empty.
func MuteToMaybe[T any](s mute.Stream[T]) maybe.Stream[T] {
	return s
}

// MuteToMany widens a Mute stream to Many.
func MuteToMany[T any](s mute.Stream[T]) many.Stream[T] {
	return s
}

// MonoToMaybe widens a Mono stream to Maybe.
func MonoToMaybe[T any](s mono.Stream[T]) maybe.Stream[T] {
	return s
}

// MonoToMany widens a Mono stream to Many.
func MonoToMany[T any](s mono.Stream[T]) many.Stream[T] {
	return s
}

// MaybeToMany widens a Maybe stream to Many.
func MaybeToMany[T any](s maybe.Stream[T]) many.Stream[T] {
	return s
}

// MuteToMono narrows a Mute stream to Mono by supplying the item that a
// successful completion stands for. complete is called at most once, on
// normal completion, and its result becomes the Mono's single item.
func MuteToMono[T any](s mute.Stream[T], complete func() T) mono.Stream[T] {
	return core.EmitFunc[T](func(r core.Receiver[T]) {
		s.Subscribe(&muteToMonoReceiver[T]{downstream: r, complete: complete})
	})
}

type muteToMonoReceiver[T any] struct {
	downstream core.Receiver[T]
	complete   func() T
}

func (a *muteToMonoReceiver[T]) Open(p core.Pipe) { a.downstream.Open(p) }
func (a *muteToMonoReceiver[T]) Receive(item T)   {}
func (a *muteToMonoReceiver[T]) Error(err error)  { a.downstream.Error(err) }

func (a *muteToMonoReceiver[T]) Complete() {
	a.downstream.Receive(a.complete())
	a.downstream.Complete()
}

// ToMute narrows any stream to Mute by discarding every item it
// delivers and keeping only its terminal.
func ToMute[T any](s core.Emitter[T]) mute.Stream[T] {
	return core.EmitFunc[T](func(r core.Receiver[T]) {
		s.Subscribe(&discardReceiver[T]{downstream: r})
	})
}

type discardReceiver[T any] struct {
	downstream core.Receiver[T]
}

func (a *discardReceiver[T]) Open(p core.Pipe) { a.downstream.Open(p) }
func (a *discardReceiver[T]) Receive(item T)   {}
func (a *discardReceiver[T]) Complete()        { a.downstream.Complete() }
func (a *discardReceiver[T]) Error(err error)  { a.downstream.Error(err) }

// MaybeToMono narrows a Maybe stream to Mono by supplying a fallback
// item for the empty case. absent is called at most once, only if the
// source completes without ever delivering an item.
func MaybeToMono[T any](s maybe.Stream[T], absent func() T) mono.Stream[T] {
	return core.EmitFunc[T](func(r core.Receiver[T]) {
		s.Subscribe(&maybeToMonoReceiver[T]{downstream: r, absent: absent})
	})
}

type maybeToMonoReceiver[T any] struct {
	downstream core.Receiver[T]
	absent     func() T
	received   bool
}

func (a *maybeToMonoReceiver[T]) Open(p core.Pipe) { a.downstream.Open(p) }

func (a *maybeToMonoReceiver[T]) Receive(item T) {
	a.received = true
	a.downstream.Receive(item)
}

func (a *maybeToMonoReceiver[T]) Complete() {
	if !a.received {
		a.downstream.Receive(a.absent())
	}
	a.downstream.Complete()
}

func (a *maybeToMonoReceiver[T]) Error(err error) { a.downstream.Error(err) }

// MaybeToOptionalMono narrows a Maybe stream of T to a Mono of *T: a
// present item becomes a non-nil pointer, an empty completion becomes a
// nil pointer. This is the idiomatic substitute for an algebraic Option
// wrapper.
func MaybeToOptionalMono[T any](s maybe.Stream[T]) mono.Stream[*T] {
	return core.EmitFunc[*T](func(r core.Receiver[*T]) {
		s.Subscribe(&optionalReceiver[T]{downstream: r})
	})
}

type optionalReceiver[T any] struct {
	downstream core.Receiver[*T]
	received   bool
}

func (a *optionalReceiver[T]) Open(p core.Pipe) { a.downstream.Open(p) }

func (a *optionalReceiver[T]) Receive(item T) {
	a.received = true
	v := item
	a.downstream.Receive(&v)
}

func (a *optionalReceiver[T]) Complete() {
	if !a.received {
		a.downstream.Receive(nil)
	}
	a.downstream.Complete()
}

func (a *optionalReceiver[T]) Error(err error) { a.downstream.Error(err) }
