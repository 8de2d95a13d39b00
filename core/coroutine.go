package core

import "fmt"

// Sink is handed to a coroutine generator's body so it can produce items.
// Emit may suspend: if the stage currently has no outstanding demand, the
// call blocks until a Request supplies some.
type Sink[T any] interface {
	Emit(item T)
}

// cancelSignal is what a suspended Emit panics with when the downstream
// pipe has been closed in the interim. A coroutine body must never
// recover from this — letting it propagate is what unwinds the
// goroutine cleanly; core/coroutine.go is the only place that catches it.
type cancelSignal struct{}

// budgetExceeded is panicked by a checked sink (used by Maybe/Mono
// generators) when the body tries to Emit more items than its arity
// allows. It is translated into a ViolationError, never a cancellation.
type budgetExceeded struct{ reason string }

// coroSink is the unchecked Sink used by Many generators: any number of
// emits, each handed off to the driver over an unbuffered channel.
type coroSink[T any] struct {
	itemCh   chan T
	cancelCh chan struct{}
}

func (s *coroSink[T]) Emit(item T) {
	select {
	case s.itemCh <- item:
	case <-s.cancelCh:
		panic(cancelSignal{})
	}
}

// boundedSink wraps a coroSink to enforce a maximum emit count, used by
// the Maybe and Mono adapters over the same coroutine engine.
type boundedSink[T any] struct {
	inner *coroSink[T]
	max   int
	count *int
}

func (s *boundedSink[T]) Emit(item T) {
	if *s.count >= s.max {
		panic(budgetExceeded{reason: fmt.Sprintf("generator emitted more than %d item(s)", s.max)})
	}
	*s.count++
	s.inner.Emit(item)
}

// coroutineGen drives a user-supplied body cooperatively: the body runs
// on its own goroutine, but every item is handed off through itemCh, a
// strict, unbuffered rendezvous (doneCh holds at most the one terminal
// result), so from the signal protocol's point of
// view only one side is ever doing work at a time — the same observable
// behavior as a single-threaded coroutine.
type coroutineGen[T any] struct {
	GeneratorStage[T]

	body         func(Sink[T])
	maxEmits     int // -1 means unbounded (Many)
	requireExact bool

	demand   Demand
	started  bool
	draining bool

	cancelCh chan struct{}
	itemCh   chan T
	doneCh   chan error
}

// Generate builds an Emitter whose items are produced by body, called
// fresh on every Subscribe. The body may Emit any number of times.
func Generate[T any](body func(Sink[T])) Emitter[T] {
	return newCoroutineEmitter(body, -1, false)
}

// GenerateChecked builds an Emitter like Generate, but enforces that body
// emits at most maxEmits items; if requireExact, body must emit exactly
// maxEmits items before returning normally, or the stage emits an Error
// instead of Complete. This backs the Maybe and Mono generator adapters.
func GenerateChecked[T any](body func(Sink[T]), maxEmits int, requireExact bool) Emitter[T] {
	return newCoroutineEmitter(body, maxEmits, requireExact)
}

func newCoroutineEmitter[T any](body func(Sink[T]), maxEmits int, requireExact bool) Emitter[T] {
	return EmitFunc[T](func(r Receiver[T]) {
		g := &coroutineGen[T]{body: body, maxEmits: maxEmits, requireExact: requireExact}
		g.Init(r)
		r.Open(g)
	})
}

func (g *coroutineGen[T]) Request(n int64) {
	if g.Closed() || n == 0 {
		return
	}
	g.demand.Request(n)
	if g.draining {
		// Re-entrant: the coroutine is running, not suspended.
		// we must not try to resume it again — just record the demand.
		return
	}
	if !g.started {
		g.started = true
		g.cancelCh = make(chan struct{})
		g.itemCh = make(chan T)
		g.doneCh = make(chan error, 1)
		go g.run()
	}
	g.drain()
}

func (g *coroutineGen[T]) RequestAll() { g.Request(Infinite) }

func (g *coroutineGen[T]) Close() {
	if g.Closed() {
		return
	}
	g.MarkClosed()
	if g.started {
		close(g.cancelCh)
	}
}

// drain pulls items out of the coroutine for as long as demand remains,
// forwarding each downstream, until either demand is exhausted (the
// coroutine is left suspended mid-Emit, which is fine) or the coroutine
// reports its terminal.
func (g *coroutineGen[T]) drain() {
	g.draining = true
	defer func() { g.draining = false }()

	for g.demand.Has(1) {
		select {
		case item := <-g.itemCh:
			g.demand.Withdraw(1)
			if !g.Emit(item) {
				return
			}
		case err := <-g.doneCh:
			if err != nil {
				g.EmitError(err)
			} else {
				g.EmitComplete()
			}
			return
		}
	}
}

func (g *coroutineGen[T]) run() {
	count := 0
	base := &coroSink[T]{itemCh: g.itemCh, cancelCh: g.cancelCh}

	var sink Sink[T] = base
	if g.maxEmits >= 0 {
		sink = &boundedSink[T]{inner: base, max: g.maxEmits, count: &count}
	}

	defer func() {
		if r := recover(); r != nil {
			switch reason := r.(type) {
			case cancelSignal:
				return
			case budgetExceeded:
				g.doneCh <- &ViolationError{Arity: "generator", Reason: reason.reason}
			default:
				g.doneCh <- fmt.Errorf("flux: panic in generator body: %v", r)
			}
			return
		}
		if g.requireExact && count != g.maxEmits {
			g.doneCh <- &ViolationError{
				Arity:  "generator",
				Reason: fmt.Sprintf("body returned after emitting %d item(s), want exactly %d", count, g.maxEmits),
			}
			return
		}
		g.doneCh <- nil
	}()

	g.body(sink)
}
