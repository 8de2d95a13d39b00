// Package ops provides the operator stages: pipeline stages that sit
// between an upstream Emitter and a downstream Receiver, reshaping what
// flows through without changing who drives the pace. Every operator
// here forwards cancellation upstream. Map forwards demand upstream
// unchanged; the buffering operators issue their own upstream requests
// (priming and topping up their queue). Map and the buffering operators
// are cardinality-preserving by design, matching the wire-level
// Receiver contract every arity is built on.
package ops

import (
	"fmt"

	"github.com/lguimbarda/flux/core"
)

// Mapper transforms one item of type IN into one item of type OUT, or
// reports why it couldn't.
type Mapper[IN, OUT any] func(IN) (OUT, error)

// Map applies fn to every item upstream delivers, forwarding the result
// downstream. A panic inside fn is recovered and reported as an Error,
// same as a returned error.
func Map[IN, OUT any](upstream core.Emitter[IN], fn Mapper[IN, OUT]) core.Emitter[OUT] {
	return core.EmitFunc[OUT](func(r core.Receiver[OUT]) {
		op := &mapOperator[IN, OUT]{fn: fn}
		op.Init(r)
		upstream.Subscribe(op)
	})
}

type mapOperator[IN, OUT any] struct {
	core.OperatorStage[IN, OUT]
	fn Mapper[IN, OUT]
}

func (o *mapOperator[IN, OUT]) Open(p core.Pipe) {
	o.Upstream = p
	o.Downstream.Open(o)
}

func (o *mapOperator[IN, OUT]) Request(n int64) { o.Take(n) }
func (o *mapOperator[IN, OUT]) RequestAll()     { o.TakeAll() }

func (o *mapOperator[IN, OUT]) Receive(item IN) {
	out, err := o.apply(item)
	if err != nil {
		o.EmitError(err)
		return
	}
	o.Emit(out)
}

func (o *mapOperator[IN, OUT]) Complete()       { o.EmitComplete() }
func (o *mapOperator[IN, OUT]) Error(err error) { o.EmitError(err) }

func (o *mapOperator[IN, OUT]) apply(item IN) (out OUT, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("flux: panic in map function: %v", r)
		}
	}()
	return o.fn(item)
}
