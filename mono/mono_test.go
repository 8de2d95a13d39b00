package mono_test

import (
	"errors"
	"testing"

	"github.com/lguimbarda/flux/core"
	"github.com/lguimbarda/flux/fluxtest"
	"github.com/lguimbarda/flux/mono"
)

func TestJustDeliversExactlyOne(t *testing.T) {
	r := fluxtest.Run(mono.Just(42))
	fluxtest.AssertItems(t, r, []int{42})
	fluxtest.AssertCompleted(t, r)
}

func TestFailedNeverDeliversAnItem(t *testing.T) {
	want := errors.New("lookup failed")
	r := fluxtest.Run(mono.Failed[string](want))
	if len(r.Items()) != 0 {
		t.Fatalf("expected no items, got %v", r.Items())
	}
	got := fluxtest.AssertError(t, r)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestGenerateDeliversSingleEmission(t *testing.T) {
	s := mono.Generate[string](func(sink core.Sink[string]) {
		sink.Emit("hello")
	})
	r := fluxtest.Run(s)
	fluxtest.AssertItems(t, r, []string{"hello"})
	fluxtest.AssertCompleted(t, r)
}

func TestGenerateZeroEmissionsIsAnError(t *testing.T) {
	s := mono.Generate[string](func(sink core.Sink[string]) {})
	r := fluxtest.Run(s)
	fluxtest.AssertError(t, r)
}

func TestGenerateTwoEmissionsIsAnError(t *testing.T) {
	s := mono.Generate[int](func(sink core.Sink[int]) {
		sink.Emit(1)
		sink.Emit(2)
	})
	r := fluxtest.Run(s)
	fluxtest.AssertError(t, r)
}

func TestSubscribeResolvesDefaultPolicy(t *testing.T) {
	rec := &captureMono{}
	mono.Subscribe[int](mono.Just(5), rec)

	if rec.value != 5 || !rec.done {
		t.Fatalf("expected CompleteWith(5), got value=%d done=%v", rec.value, rec.done)
	}
}

type captureMono struct {
	mono.ReceiverBase[int]
	value int
	done  bool
}

func (c *captureMono) CompleteWith(item int) {
	c.value = item
	c.done = true
}

func (c *captureMono) Error(error) {}
