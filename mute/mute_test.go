package mute_test

import (
	"errors"
	"testing"

	"github.com/lguimbarda/flux/fluxtest"
	"github.com/lguimbarda/flux/mute"
)

func TestEmptyCompletes(t *testing.T) {
	r := fluxtest.Run(mute.Empty[int]())
	fluxtest.AssertCompleted(t, r)
	fluxtest.AssertNoError(t, r)
}

func TestActionRunsOnceAndCompletes(t *testing.T) {
	calls := 0
	s := mute.Action[struct{}](func() error {
		calls++
		return nil
	})

	r := fluxtest.Run(s)
	fluxtest.AssertCompleted(t, r)
	if calls != 1 {
		t.Fatalf("expected fn to run exactly once, ran %d times", calls)
	}
}

func TestActionFailurePropagatesAsError(t *testing.T) {
	want := errors.New("disk full")
	s := mute.Action[struct{}](func() error { return want })

	r := fluxtest.Run(s)
	got := fluxtest.AssertError(t, r)
	if got != want {
		t.Fatalf("got error %v, want %v", got, want)
	}
}

func TestActionIsFreshPerSubscription(t *testing.T) {
	calls := 0
	s := mute.Action[struct{}](func() error {
		calls++
		return nil
	})

	fluxtest.Run(s)
	fluxtest.Run(s)

	if calls != 2 {
		t.Fatalf("expected fn to run once per subscription, ran %d times", calls)
	}
}
