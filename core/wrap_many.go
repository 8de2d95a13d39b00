package core

// manyWrapper adapts a ManyReceiver onto the general Receiver[T] wire.
// Many's state machine is the simplest of the four: BUSY accepts any
// number of items, and at most one terminator moves it to DONE.
type manyWrapper[T any] struct {
	delegate ManyReceiver[T]
	policy   ViolationPolicy
	done     bool
}

// WrapMany adapts r into the general Receiver[T] wire contract, enforcing
// the Many arity (at most one terminal, no bound on item count) per the
// given violation policy.
func WrapMany[T any](r ManyReceiver[T], policy ViolationPolicy) Receiver[T] {
	return &manyWrapper[T]{delegate: r, policy: policy}
}

func (w *manyWrapper[T]) Open(p Pipe) {
	w.delegate.Open(p)
}

func (w *manyWrapper[T]) Receive(item T) {
	if w.done {
		w.violate("received an item after the stream was already done")
		return
	}
	w.delegate.Receive(item)
}

func (w *manyWrapper[T]) Complete() {
	if w.done {
		w.violate("received Complete after the stream was already done")
		return
	}
	w.done = true
	w.delegate.Complete()
}

func (w *manyWrapper[T]) Error(err error) {
	if w.done {
		return
	}
	w.done = true
	w.delegate.Error(err)
}

func (w *manyWrapper[T]) violate(reason string) {
	violate(w.policy, "many", reason, &w.done, w.delegate.Error)
}
