package observe

import (
	"context"

	"github.com/google/uuid"

	"github.com/lguimbarda/flux/core"
)

type idKey struct{}

// WithID attaches an explicit correlation id to ctx, overriding the
// random one Subscribe would otherwise generate.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// IDFrom returns the correlation id on ctx, or "" if none was attached.
func IDFrom(ctx context.Context) string {
	id, _ := ctx.Value(idKey{}).(string)
	return id
}

// Subscribe wires r onto s, firing every Hooks[T] registered on ctx
// around the underlying signals. If ctx carries no correlation id, a
// fresh one is generated for this call, but it has no way to reach
// hooks that already closed over an earlier context — call WithID
// before attaching WithLogging or any other hook that reads IDFrom if
// the id needs to show up in their output.
func Subscribe[T any](ctx context.Context, s core.Emitter[T], r core.Receiver[T]) {
	if IDFrom(ctx) == "" {
		ctx = WithID(ctx, uuid.NewString())
	}
	sets := hooksFrom[T](ctx)
	if len(sets) == 0 {
		s.Subscribe(r)
		return
	}
	s.Subscribe(&observingReceiver[T]{downstream: r, sets: sets})
}

type observingReceiver[T any] struct {
	downstream core.Receiver[T]
	sets       []Hooks[T]
}

func (o *observingReceiver[T]) Open(p core.Pipe) {
	fireOpen(o.sets)
	o.downstream.Open(p)
}

func (o *observingReceiver[T]) Receive(item T) {
	fireReceive(o.sets, item)
	o.downstream.Receive(item)
}

func (o *observingReceiver[T]) Complete() {
	fireComplete(o.sets)
	o.downstream.Complete()
}

func (o *observingReceiver[T]) Error(err error) {
	fireError(o.sets, err)
	o.downstream.Error(err)
}
