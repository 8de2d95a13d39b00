// Package fluxtest provides a signal recorder for tests: a Receiver
// that captures everything a subscription delivered so a test can
// assert on it after the fact, plus a handful of assertion helpers in
// the style used throughout this module's own test suite.
package fluxtest

import (
	"fmt"

	"github.com/lguimbarda/flux/core"
)

// EventKind identifies which signal a recorded Event represents.
type EventKind int

const (
	EventReceive EventKind = iota
	EventComplete
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventReceive:
		return "receive"
	case EventComplete:
		return "complete"
	case EventError:
		return "error"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one recorded signal.
type Event[T any] struct {
	Kind EventKind
	Item T     // valid when Kind == EventReceive
	Err  error // valid when Kind == EventError
}

// Recorder is a core.Receiver that records every signal it observes, in
// order, for later inspection. The zero value is ready to use.
//
// Recorder is not safe for concurrent use; the signal protocol it
// implements is itself single-threaded per subscription.
type Recorder[T any] struct {
	pipe   core.Pipe
	events []Event[T]
}

// NewRecorder returns a ready Recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// Open stores the pipe and requests every item immediately; Recorder has
// no mode that defers this. A test that drives demand itself subscribes
// through its own receiver whose Open keeps the pipe without requesting,
// and forwards the other signals to the Recorder.
func (r *Recorder[T]) Open(p core.Pipe) {
	r.pipe = p
	p.RequestAll()
}

// Pipe returns the Pipe handed to Open, for tests that want to drive
// demand or cancellation explicitly.
func (r *Recorder[T]) Pipe() core.Pipe { return r.pipe }

func (r *Recorder[T]) Receive(item T) {
	r.events = append(r.events, Event[T]{Kind: EventReceive, Item: item})
}

func (r *Recorder[T]) Complete() {
	r.events = append(r.events, Event[T]{Kind: EventComplete})
}

func (r *Recorder[T]) Error(err error) {
	r.events = append(r.events, Event[T]{Kind: EventError, Err: err})
}

// Events returns a copy of every recorded signal, in order.
func (r *Recorder[T]) Events() []Event[T] {
	out := make([]Event[T], len(r.events))
	copy(out, r.events)
	return out
}

// Items returns every item from EventReceive events, in order.
func (r *Recorder[T]) Items() []T {
	out := make([]T, 0, len(r.events))
	for _, e := range r.events {
		if e.Kind == EventReceive {
			out = append(out, e.Item)
		}
	}
	return out
}

// Completed reports whether a Complete event was recorded.
func (r *Recorder[T]) Completed() bool {
	for _, e := range r.events {
		if e.Kind == EventComplete {
			return true
		}
	}
	return false
}

// Err returns the first recorded error, or nil if none was recorded.
func (r *Recorder[T]) Err() error {
	for _, e := range r.events {
		if e.Kind == EventError {
			return e.Err
		}
	}
	return nil
}

// Reset clears every recorded event.
func (r *Recorder[T]) Reset() {
	r.events = nil
}
