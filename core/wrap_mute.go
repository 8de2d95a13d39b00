package core

// muteWrapper adapts a MuteReceiver onto the general Receiver[T] wire,
// policing the Mute contract: no Item may ever arrive, and at most one
// terminal may arrive.
type muteWrapper[T any] struct {
	delegate MuteReceiver[T]
	policy   ViolationPolicy
	done     bool
}

// WrapMute adapts r into the general Receiver[T] wire contract, enforcing
// the Mute arity (zero items) per the given violation policy.
func WrapMute[T any](r MuteReceiver[T], policy ViolationPolicy) Receiver[T] {
	return &muteWrapper[T]{delegate: r, policy: policy}
}

func (w *muteWrapper[T]) Open(p Pipe) {
	w.delegate.Open(p)
}

func (w *muteWrapper[T]) Receive(item T) {
	// An item is never legal for Mute; this is always a violation.
	w.violate("received an item, but Mute promises zero items")
}

func (w *muteWrapper[T]) Complete() {
	if w.done {
		w.violate("received Complete after the stream was already done")
		return
	}
	w.done = true
	w.delegate.Complete()
}

func (w *muteWrapper[T]) Error(err error) {
	if w.done {
		return // a second terminal after DONE is dropped, not re-raised
	}
	w.done = true
	w.delegate.Error(err)
}

func (w *muteWrapper[T]) violate(reason string) {
	violate(w.policy, "mute", reason, &w.done, w.delegate.Error)
}
