package fluxtest_test

import (
	"errors"
	"testing"

	"github.com/lguimbarda/flux/fluxtest"
	"github.com/lguimbarda/flux/many"
)

func TestRecorderCapturesItemsAndCompletion(t *testing.T) {
	r := fluxtest.Run(many.FromSlice([]int{1, 2, 3}))

	fluxtest.AssertItems(t, r, []int{1, 2, 3})
	fluxtest.AssertCompleted(t, r)
	fluxtest.AssertNoError(t, r)

	events := r.Events()
	if len(events) != 4 {
		t.Fatalf("expected 4 events (3 receives + 1 complete), got %d", len(events))
	}
	for i := 0; i < 3; i++ {
		if events[i].Kind != fluxtest.EventReceive {
			t.Fatalf("event %d: expected EventReceive, got %v", i, events[i].Kind)
		}
	}
	if events[3].Kind != fluxtest.EventComplete {
		t.Fatalf("expected final event to be EventComplete, got %v", events[3].Kind)
	}
}

func TestRecorderCapturesError(t *testing.T) {
	want := errors.New("boom")

	rec := fluxtest.NewRecorder[int]()
	rec.Open(noopPipe{})
	rec.Error(want)

	got := fluxtest.AssertError(t, rec)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if rec.Completed() {
		t.Fatal("an errored subscription must not report Completed")
	}
}

func TestRecorderReset(t *testing.T) {
	rec := fluxtest.NewRecorder[int]()
	rec.Open(noopPipe{})
	rec.Receive(1)
	rec.Complete()

	rec.Reset()

	if len(rec.Events()) != 0 {
		t.Fatalf("expected Reset to clear events, got %v", rec.Events())
	}
}

type noopPipe struct{}

func (noopPipe) Request(int64) {}
func (noopPipe) RequestAll()   {}
func (noopPipe) Close()        {}
