package maybe_test

import (
	"testing"

	"github.com/lguimbarda/flux/core"
	"github.com/lguimbarda/flux/fluxtest"
	"github.com/lguimbarda/flux/maybe"
)

func TestJustDeliversOneItem(t *testing.T) {
	r := fluxtest.Run(maybe.Just("x"))
	fluxtest.AssertItems(t, r, []string{"x"})
	fluxtest.AssertCompleted(t, r)
}

func TestEmptyCompletesWithNoItem(t *testing.T) {
	r := fluxtest.Run(maybe.Empty[string]())
	if len(r.Items()) != 0 {
		t.Fatalf("expected no items, got %v", r.Items())
	}
	fluxtest.AssertCompleted(t, r)
}

func TestFromPointerPresent(t *testing.T) {
	v := 7
	r := fluxtest.Run(maybe.FromPointer(&v))
	fluxtest.AssertItems(t, r, []int{7})
}

func TestFromPointerAbsent(t *testing.T) {
	r := fluxtest.Run(maybe.FromPointer[int](nil))
	if len(r.Items()) != 0 {
		t.Fatalf("expected no items for a nil pointer, got %v", r.Items())
	}
	fluxtest.AssertCompleted(t, r)
}

func TestGenerateAtMostOneAllowsEmpty(t *testing.T) {
	s := maybe.Generate[int](func(sink core.Sink[int]) {})
	r := fluxtest.Run(s)
	if len(r.Items()) != 0 {
		t.Fatalf("expected no items, got %v", r.Items())
	}
	fluxtest.AssertCompleted(t, r)
}

func TestGenerateSecondEmissionIsAnError(t *testing.T) {
	s := maybe.Generate[int](func(sink core.Sink[int]) {
		sink.Emit(1)
		sink.Emit(2)
	})
	r := fluxtest.Run(s)
	fluxtest.AssertError(t, r)
}
