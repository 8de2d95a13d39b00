package core

// MuteReceiver is the sink for a Mute stream: one that delivers zero
// items and terminates by Complete or Error. The type parameter is
// phantom — it exists only so MuteReceiver can be wrapped onto the same
// general Receiver[T] wire contract every other arity uses, which lets
// the wrapper treat an unexpected item as the violation it is (see
// wrap_mute.go) rather than it being a compile error to even describe.
type MuteReceiver[T any] interface {
	Open(p Pipe)
	Complete()
	Error(err error)
}

// MonoReceiver is the sink for a Mono stream: exactly one item, then
// completion. CompleteWith combines the item with termination — there is
// no standalone item callback, so a conforming receiver cannot observe
// "item without terminator" as an intermediate state.
type MonoReceiver[T any] interface {
	Open(p Pipe)
	CompleteWith(item T)
	Error(err error)
}

// MaybeReceiver is the sink for a Maybe stream: zero or one item. Exactly
// one of CompleteWith or CompleteEmpty is called on normal termination.
type MaybeReceiver[T any] interface {
	Open(p Pipe)
	CompleteWith(item T)
	CompleteEmpty()
	Error(err error)
}

// ManyReceiver is the sink for a Many stream: any number of items
// followed by at most one terminator. Its shape is identical to the
// general Receiver[T]; it is named separately so call sites read as
// arity-scoped API rather than reaching into core directly.
type ManyReceiver[T any] interface {
	Open(p Pipe)
	Receive(item T)
	Complete()
	Error(err error)
}

// MuteReceiverBase supplies the default Open behavior ("request infinite
// demand immediately") shared by every specialized receiver that doesn't
// need to shape demand itself. Embed it and override Open only if
// different demand shaping is needed.
type MuteReceiverBase struct{}

func (MuteReceiverBase) Open(p Pipe) { p.RequestAll() }

// MonoReceiverBase supplies the default Open behavior for MonoReceiver.
type MonoReceiverBase[T any] struct{}

func (MonoReceiverBase[T]) Open(p Pipe) { p.RequestAll() }

// MaybeReceiverBase supplies the default Open behavior for MaybeReceiver.
type MaybeReceiverBase[T any] struct{}

func (MaybeReceiverBase[T]) Open(p Pipe) { p.RequestAll() }

// ManyReceiverBase supplies the default Open behavior for ManyReceiver.
type ManyReceiverBase[T any] struct{}

func (ManyReceiverBase[T]) Open(p Pipe) { p.RequestAll() }
