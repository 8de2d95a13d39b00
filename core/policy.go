package core

import "fmt"

// ViolationPolicy selects how an arity-enforcing wrapper reacts when it
// detects an upstream contract breach (item after terminal, two
// terminals, item on Mute, item beyond Mono's one-item budget, and so
// on).
type ViolationPolicy int

const (
	// Ignore silently swallows the offending signal; wrapper state is
	// left unchanged. This is the default used by the arity-scoped
	// Subscribe helpers when no policy is given.
	Ignore ViolationPolicy = iota

	// Delegate synthesizes an Error carrying an illegal-state
	// description and delivers it to the delegate receiver (unless the
	// wrapper is already done, in which case the signal is dropped),
	// then transitions to done.
	Delegate

	// Throw raises the illegal-state condition on the calling goroutine.
	// Intended for debugging only: it propagates out of whatever
	// Subscribe call triggered it, so production code should prefer
	// Ignore or Delegate.
	Throw
)

func (p ViolationPolicy) String() string {
	switch p {
	case Ignore:
		return "ignore"
	case Delegate:
		return "delegate"
	case Throw:
		return "throw"
	default:
		return fmt.Sprintf("ViolationPolicy(%d)", int(p))
	}
}

// ViolationError describes a detected protocol violation. It is what
// Delegate delivers as the synthesized Error, and what Throw panics with.
type ViolationError struct {
	// Arity names the receiver kind that detected the violation
	// ("mute", "mono", "maybe", "many").
	Arity string
	// Reason describes what went wrong.
	Reason string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("flux: %s receiver contract violation: %s", e.Arity, e.Reason)
}
