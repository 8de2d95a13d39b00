package core

type monoState int

const (
	monoInit monoState = iota
	monoReceived
	monoDone
)

// monoWrapper adapts a MonoReceiver onto the general Receiver[T] wire. It
// buffers the single item it is promised until the terminal arrives,
// then delivers the combined CompleteWith(item).
type monoWrapper[T any] struct {
	delegate MonoReceiver[T]
	policy   ViolationPolicy
	state    monoState
	item     T
	doneFlag bool // mirrors state == monoDone, for the shared violate() helper
}

// WrapMono adapts r into the general Receiver[T] wire contract, enforcing
// the Mono arity (exactly one item) per the given violation policy.
func WrapMono[T any](r MonoReceiver[T], policy ViolationPolicy) Receiver[T] {
	return &monoWrapper[T]{delegate: r, policy: policy}
}

func (w *monoWrapper[T]) Open(p Pipe) {
	w.delegate.Open(p)
}

func (w *monoWrapper[T]) Receive(item T) {
	switch w.state {
	case monoInit:
		w.item = item
		w.state = monoReceived
	case monoReceived:
		w.violate("received a second item, but Mono promises exactly one")
	case monoDone:
		w.violate("received an item after the stream was already done")
	}
}

func (w *monoWrapper[T]) Complete() {
	switch w.state {
	case monoInit:
		w.violate("received Complete before any item, but Mono promises exactly one")
	case monoReceived:
		w.state = monoDone
		w.doneFlag = true
		w.delegate.CompleteWith(w.item)
	case monoDone:
		w.violate("received Complete after the stream was already done")
	}
}

func (w *monoWrapper[T]) Error(err error) {
	if w.state == monoDone {
		return
	}
	w.state = monoDone
	w.doneFlag = true
	w.delegate.Error(err)
}

func (w *monoWrapper[T]) violate(reason string) {
	violate(w.policy, "mono", reason, &w.doneFlag, w.delegate.Error)
	if w.doneFlag {
		w.state = monoDone
	}
}
