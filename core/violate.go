package core

// violate applies policy to a detected contract breach. Ignore leaves
// *done untouched. Delegate synthesizes a ViolationError and reports it
// through deliverError, then marks *done — unless *done was already set,
// in which case the signal is silently dropped. Throw panics on the
// calling goroutine instead of delivering anything.
func violate(policy ViolationPolicy, arity, reason string, done *bool, deliverError func(error)) {
	switch policy {
	case Ignore:
		return
	case Delegate:
		if *done {
			return
		}
		*done = true
		deliverError(&ViolationError{Arity: arity, Reason: reason})
	case Throw:
		panic(&ViolationError{Arity: arity, Reason: reason})
	default:
		panic(&ViolationError{Arity: arity, Reason: "unknown violation policy"})
	}
}
