package core

// Empty returns an Emitter that delivers no items and completes as soon
// as it receives its first nonzero request, whatever its size;
// Request(0) is a no-op.
func Empty[T any]() Emitter[T] {
	return EmitFunc[T](func(r Receiver[T]) {
		s := &emptySource[T]{}
		s.Init(r)
		r.Open(s)
	})
}

type emptySource[T any] struct {
	GeneratorStage[T]
}

func (s *emptySource[T]) Request(n int64) {
	if n == 0 {
		return
	}
	s.EmitComplete()
}
func (s *emptySource[T]) RequestAll() { s.EmitComplete() }
func (s *emptySource[T]) Close()      { s.MarkClosed() }

// Never returns an Emitter that never emits and never terminates. It
// only ever responds to Close.
func Never[T any]() Emitter[T] {
	return EmitFunc[T](func(r Receiver[T]) {
		s := &neverSource[T]{}
		s.Init(r)
		r.Open(s)
	})
}

type neverSource[T any] struct {
	GeneratorStage[T]
}

func (s *neverSource[T]) Request(int64) {}
func (s *neverSource[T]) RequestAll()    {}
func (s *neverSource[T]) Close()         { s.MarkClosed() }

// Single returns an Emitter that delivers exactly one item, then
// completes, as soon as accumulated demand reaches at least one.
func Single[T any](value T) Emitter[T] {
	return EmitFunc[T](func(r Receiver[T]) {
		s := &singleSource[T]{value: value}
		s.Init(r)
		r.Open(s)
	})
}

type singleSource[T any] struct {
	GeneratorStage[T]
	value  T
	sent   bool
	demand Demand
}

func (s *singleSource[T]) Request(n int64) {
	if s.sent || s.Closed() {
		return
	}
	s.demand.Request(n)
	s.tryEmit()
}

func (s *singleSource[T]) RequestAll() { s.Request(Infinite) }

func (s *singleSource[T]) tryEmit() {
	if s.sent || !s.demand.Has(1) {
		return
	}
	s.sent = true
	if s.Emit(s.value) {
		s.EmitComplete()
	}
}

func (s *singleSource[T]) Close() { s.MarkClosed() }

// Iterable returns an Emitter that delivers every item an Iterator
// produces, in order, then completes. Next is called exactly once per
// item emitted downstream, and only while demand remains. After each
// emitted item HasNext is checked, so Complete follows the last item
// without waiting for another request. newIt is called once per Subscribe, fresh, so the
// returned Emitter supports any number of independent subscriptions —
// callers must hand Iterable a factory, not a shared Iterator instance.
func Iterable[T any](newIt func() Iterator[T]) Emitter[T] {
	return EmitFunc[T](func(r Receiver[T]) {
		s := &iterableSource[T]{it: newIt()}
		s.Init(r)
		r.Open(s)
	})
}

type iterableSource[T any] struct {
	GeneratorStage[T]
	it       Iterator[T]
	demand   Demand
	draining bool
}

func (s *iterableSource[T]) Request(n int64) {
	if s.Closed() {
		return
	}
	s.demand.Request(n)
	if s.draining {
		return
	}
	s.drain()
}

func (s *iterableSource[T]) RequestAll() { s.Request(Infinite) }

func (s *iterableSource[T]) drain() {
	s.draining = true
	defer func() { s.draining = false }()

	for s.demand.Has(1) {
		if !s.it.HasNext() {
			s.EmitComplete()
			return
		}
		item := s.it.Next()
		s.demand.Withdraw(1)
		if !s.Emit(item) {
			return
		}
		if !s.it.HasNext() {
			s.EmitComplete()
			return
		}
	}
}

func (s *iterableSource[T]) Close() { s.MarkClosed() }
