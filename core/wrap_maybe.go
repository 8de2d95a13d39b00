package core

type maybeState int

const (
	maybeInit maybeState = iota
	maybeReceived
	maybeDone
)

// maybeWrapper adapts a MaybeReceiver onto the general Receiver[T] wire.
// Like Mono it buffers the item until the terminal, but unlike Mono a
// Complete seen from the init state is legitimate: it means the stream
// completed empty.
type maybeWrapper[T any] struct {
	delegate MaybeReceiver[T]
	policy   ViolationPolicy
	state    maybeState
	item     T
	doneFlag bool
}

// WrapMaybe adapts r into the general Receiver[T] wire contract,
// enforcing the Maybe arity (zero or one item) per the given policy.
func WrapMaybe[T any](r MaybeReceiver[T], policy ViolationPolicy) Receiver[T] {
	return &maybeWrapper[T]{delegate: r, policy: policy}
}

func (w *maybeWrapper[T]) Open(p Pipe) {
	w.delegate.Open(p)
}

func (w *maybeWrapper[T]) Receive(item T) {
	switch w.state {
	case maybeInit:
		w.item = item
		w.state = maybeReceived
	case maybeReceived:
		w.violate("received a second item, but Maybe promises at most one")
	case maybeDone:
		w.violate("received an item after the stream was already done")
	}
}

func (w *maybeWrapper[T]) Complete() {
	switch w.state {
	case maybeInit:
		w.state = maybeDone
		w.doneFlag = true
		w.delegate.CompleteEmpty()
	case maybeReceived:
		w.state = maybeDone
		w.doneFlag = true
		w.delegate.CompleteWith(w.item)
	case maybeDone:
		w.violate("received Complete after the stream was already done")
	}
}

func (w *maybeWrapper[T]) Error(err error) {
	if w.state == maybeDone {
		return
	}
	w.state = maybeDone
	w.doneFlag = true
	w.delegate.Error(err)
}

func (w *maybeWrapper[T]) violate(reason string) {
	violate(w.policy, "maybe", reason, &w.doneFlag, w.delegate.Error)
	if w.doneFlag {
		w.state = maybeDone
	}
}
