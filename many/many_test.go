package many_test

import (
	"testing"

	"github.com/lguimbarda/flux/core"
	"github.com/lguimbarda/flux/fluxtest"
	"github.com/lguimbarda/flux/many"
)

func TestFromSliceDeliversInOrder(t *testing.T) {
	r := fluxtest.Run(many.FromSlice([]int{1, 2, 3}))
	fluxtest.AssertItems(t, r, []int{1, 2, 3})
	fluxtest.AssertCompleted(t, r)
}

func TestFromSliceCopiesInput(t *testing.T) {
	input := []int{1, 2, 3}
	s := many.FromSlice(input)
	input[0] = 99

	r := fluxtest.Run(s)
	fluxtest.AssertItems(t, r, []int{1, 2, 3})
}

func TestJustVariadic(t *testing.T) {
	r := fluxtest.Run(many.Just(10, 20, 30))
	fluxtest.AssertItems(t, r, []int{10, 20, 30})
}

func TestEmpty(t *testing.T) {
	r := fluxtest.Run(many.Empty[int]())
	if len(r.Items()) != 0 {
		t.Fatalf("expected no items, got %v", r.Items())
	}
	fluxtest.AssertCompleted(t, r)
}

func TestFromSeq(t *testing.T) {
	seq := func(yield func(int) bool) {
		for i := 1; i <= 3; i++ {
			if !yield(i * 10) {
				return
			}
		}
	}
	r := fluxtest.Run(many.FromSeq(seq))
	fluxtest.AssertItems(t, r, []int{10, 20, 30})
}

func TestGenerateArbitraryCount(t *testing.T) {
	s := many.Generate[int](func(sink core.Sink[int]) {
		for i := 0; i < 5; i++ {
			sink.Emit(i)
		}
	})
	r := fluxtest.Run(s)
	fluxtest.AssertItems(t, r, []int{0, 1, 2, 3, 4})
	fluxtest.AssertCompleted(t, r)
}

func TestFromSliceRespectsPartialDemand(t *testing.T) {
	rec := fluxtest.NewRecorder[int]()
	var pipe core.Pipe
	wrapped := &openCapture[int]{rec: rec, onOpen: func(p core.Pipe) { pipe = p }}
	many.FromSlice([]int{1, 2, 3}).Subscribe(wrapped)

	if len(rec.Items()) != 0 {
		t.Fatalf("expected no items before any request, got %v", rec.Items())
	}

	pipe.Request(2)
	fluxtest.AssertItems(t, rec, []int{1, 2})

	pipe.RequestAll()
	fluxtest.AssertItems(t, rec, []int{1, 2, 3})
	fluxtest.AssertCompleted(t, rec)
}

func TestFromSliceSupportsMultipleSubscriptions(t *testing.T) {
	s := many.FromSlice([]int{1, 2, 3})

	first := fluxtest.Run(s)
	fluxtest.AssertItems(t, first, []int{1, 2, 3})
	fluxtest.AssertCompleted(t, first)

	second := fluxtest.Run(s)
	fluxtest.AssertItems(t, second, []int{1, 2, 3})
	fluxtest.AssertCompleted(t, second)
}

func TestFromSeqSupportsMultipleSubscriptions(t *testing.T) {
	seq := func(yield func(int) bool) {
		for i := 1; i <= 3; i++ {
			if !yield(i * 10) {
				return
			}
		}
	}
	s := many.FromSeq(seq)

	first := fluxtest.Run(s)
	fluxtest.AssertItems(t, first, []int{10, 20, 30})

	second := fluxtest.Run(s)
	fluxtest.AssertItems(t, second, []int{10, 20, 30})
}

type openCapture[T any] struct {
	rec    *fluxtest.Recorder[T]
	onOpen func(core.Pipe)
}

func (c *openCapture[T]) Open(p core.Pipe)    { c.onOpen(p) }
func (c *openCapture[T]) Receive(item T)      { c.rec.Receive(item) }
func (c *openCapture[T]) Complete()           { c.rec.Complete() }
func (c *openCapture[T]) Error(err error)     { c.rec.Error(err) }
