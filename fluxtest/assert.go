package fluxtest

import (
	"reflect"
	"testing"

	"github.com/lguimbarda/flux/core"
)

// Run subscribes a fresh Recorder to s and returns it, already drained
// under infinite demand.
func Run[T any](s core.Emitter[T]) *Recorder[T] {
	r := NewRecorder[T]()
	s.Subscribe(r)
	return r
}

// AssertItems fails t unless r recorded exactly want, in order.
func AssertItems[T any](t *testing.T, r *Recorder[T], want []T) {
	t.Helper()
	got := r.Items()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
}

// AssertCompleted fails t unless r recorded a Complete signal.
func AssertCompleted[T any](t *testing.T, r *Recorder[T]) {
	t.Helper()
	if !r.Completed() {
		t.Fatalf("expected Complete, events = %v", r.Events())
	}
}

// AssertNoError fails t if r recorded an Error signal.
func AssertNoError[T any](t *testing.T, r *Recorder[T]) {
	t.Helper()
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails t unless r recorded an Error signal.
func AssertError[T any](t *testing.T, r *Recorder[T]) error {
	t.Helper()
	err := r.Err()
	if err == nil {
		t.Fatalf("expected an error, events = %v", r.Events())
	}
	return err
}
