package ops

import "github.com/lguimbarda/flux/core"

// Buffer inserts a target-capacity queue between upstream and downstream,
// decoupling their paces: it primes upstream with a request for capacity
// items immediately, then tops up that request as items leave the queue
// so the queue tends back toward capacity rather than draining to zero
// between bursts of downstream demand. Once downstream demand is
// unbounded, the top-up becomes a request for everything upstream has.
// capacity is a target, not a hard ceiling — a burst of in-flight
// upstream items can briefly overshoot it. Close discards every queued
// item and closes upstream.
func Buffer[T any](upstream core.Emitter[T], capacity int64) core.Emitter[T] {
	if capacity <= 0 {
		panic("flux: Buffer capacity must be positive; use BufferUnbounded for no limit")
	}
	return core.EmitFunc[T](func(r core.Receiver[T]) {
		op := &bufferOperator[T]{capacity: capacity}
		op.Init(r)
		upstream.Subscribe(op)
	})
}

// BufferUnbounded inserts an unbounded queue between upstream and
// downstream: upstream is immediately asked for everything it has, and
// every item it produces is held until downstream has demand for it.
// Memory use is bounded only by how far downstream falls behind.
func BufferUnbounded[T any](upstream core.Emitter[T]) core.Emitter[T] {
	return core.EmitFunc[T](func(r core.Receiver[T]) {
		op := &bufferOperator[T]{capacity: -1}
		op.Init(r)
		upstream.Subscribe(op)
	})
}

type bufferOperator[T any] struct {
	core.OperatorStage[T, T]
	capacity        int64 // -1 means unbounded
	queue           []T
	demand          core.Demand
	draining        bool
	pendingComplete bool
	pendingErr      error
}

func (o *bufferOperator[T]) Open(p core.Pipe) {
	o.Upstream = p
	o.Downstream.Open(o)
	if o.capacity < 0 {
		o.Upstream.RequestAll()
	} else {
		o.Upstream.Request(o.capacity)
	}
}

func (o *bufferOperator[T]) Request(n int64) {
	if o.Closed() {
		return
	}
	o.demand.Request(n)
	if o.draining {
		return
	}
	o.drain()
}

func (o *bufferOperator[T]) RequestAll() { o.Request(core.Infinite) }

func (o *bufferOperator[T]) drain() {
	o.draining = true
	defer func() { o.draining = false }()

	for {
		served := int64(0)
		for o.demand.Has(1) && len(o.queue) > 0 {
			item := o.queue[0]
			o.queue = o.queue[1:]
			o.demand.Withdraw(1)
			served++
			if !o.Emit(item) {
				return
			}
		}
		if len(o.queue) == 0 {
			if o.pendingErr != nil {
				o.EmitError(o.pendingErr)
				return
			}
			if o.pendingComplete {
				o.EmitComplete()
				return
			}
		}
		if served == 0 || o.capacity < 0 {
			return
		}
		if o.demand.Infinite() {
			o.Upstream.RequestAll()
		} else if topUp := served + (o.capacity - int64(len(o.queue))); topUp > 0 {
			o.Upstream.Request(topUp)
		}
		// Items the request above delivered re-entrantly were only
		// queued; keep draining while demand for them remains.
		if !o.demand.Has(1) || len(o.queue) == 0 {
			return
		}
	}
}

func (o *bufferOperator[T]) Close() {
	o.queue = nil
	o.OperatorStage.Close()
}

func (o *bufferOperator[T]) Receive(item T) {
	o.queue = append(o.queue, item)
	if !o.draining {
		o.drain()
	}
}

func (o *bufferOperator[T]) Complete() {
	if len(o.queue) == 0 {
		o.EmitComplete()
		return
	}
	o.pendingComplete = true
}

func (o *bufferOperator[T]) Error(err error) {
	if len(o.queue) == 0 {
		o.EmitError(err)
		return
	}
	o.pendingErr = err
}
