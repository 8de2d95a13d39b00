package core

// GeneratorStage is the push-side base every leaf source embeds: it owns
// the downstream Receiver and the three emit primitives shared by every
// stage. A Generator has no upstream — it implements Pipe itself and
// drives production directly from Request.
//
// Embedders must call Init once, at Subscribe time, before the first
// signal, and must set the closed flag (via MarkClosed or one of the
// Emit* helpers) before invoking the downstream callback that triggered
// the transition — signal methods may re-enter a stage synchronously, so
// state must never lag behind what has already been promised.
type GeneratorStage[T any] struct {
	Downstream Receiver[T]
	closed     bool
}

// Init stores the downstream receiver. Call this before Open.
func (g *GeneratorStage[T]) Init(downstream Receiver[T]) {
	g.Downstream = downstream
}

// Closed reports whether this stage has stopped producing signals,
// either because it reached a terminal or because Close was called.
func (g *GeneratorStage[T]) Closed() bool { return g.closed }

// MarkClosed flags the stage as closed without emitting anything. Used by
// Close() implementations, which suppress further emission but do not
// themselves send a terminal signal.
func (g *GeneratorStage[T]) MarkClosed() { g.closed = true }

// Emit forwards item downstream if not already closed, and reports
// whether the stage is still open afterward — callers use this to
// short-circuit a production loop when the downstream closed the pipe
// re-entrantly from within Receive.
func (g *GeneratorStage[T]) Emit(item T) bool {
	if g.closed {
		return false
	}
	g.Downstream.Receive(item)
	return !g.closed
}

// EmitComplete marks the stage closed and forwards Complete, unless
// already closed.
func (g *GeneratorStage[T]) EmitComplete() {
	if g.closed {
		return
	}
	g.closed = true
	g.Downstream.Complete()
}

// EmitError marks the stage closed and forwards Error, unless already
// closed.
func (g *GeneratorStage[T]) EmitError(err error) {
	if g.closed {
		return
	}
	g.closed = true
	g.Downstream.Error(err)
}

// OperatorStage is the middle-stage base every operator embeds: it is
// simultaneously the pipe its downstream sees and the receiver its
// upstream sees. It composes GeneratorStage for the downstream-facing
// half and adds the upstream Pipe reference plus the demand/close
// forwarding helpers.
type OperatorStage[IN, OUT any] struct {
	GeneratorStage[OUT]
	Upstream Pipe
}

// Take forwards a demand request upstream, unless this stage is closed or
// no upstream pipe has been acquired yet (i.e. called before Open).
func (o *OperatorStage[IN, OUT]) Take(n int64) {
	if o.Closed() || o.Upstream == nil {
		return
	}
	o.Upstream.Request(n)
}

// TakeAll forwards an unbounded demand request upstream.
func (o *OperatorStage[IN, OUT]) TakeAll() {
	if o.Closed() || o.Upstream == nil {
		return
	}
	o.Upstream.RequestAll()
}

// Close marks the stage closed and closes the upstream pipe. An operator
// must always propagate close upstream; this is idempotent.
func (o *OperatorStage[IN, OUT]) Close() {
	if o.Closed() {
		return
	}
	o.MarkClosed()
	if o.Upstream != nil {
		o.Upstream.Close()
	}
}
