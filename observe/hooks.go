// Package observe lets callers attach typed, context-scoped observation
// hooks to a subscription without modifying the pipeline itself, and
// layers structured logging and metrics on top of the same mechanism.
package observe

import "context"

// Hooks holds typed observation callbacks for a subscription. All
// fields are optional; nil means no observation for that signal. Hooks
// are invoked synchronously on the same goroutine that drives the
// subscription, so they must be fast and must not themselves call back
// into the subscription they're observing.
type Hooks[T any] struct {
	OnOpen     func()      // the subscription was opened
	OnReceive  func(T)     // an item arrived
	OnComplete func()      // the subscription completed normally
	OnError    func(error) // the subscription failed
}

type hooksKey[T any] struct{}

type hooksContainer[T any] struct {
	sets []Hooks[T]
}

// WithHooks attaches hooks to ctx for type T. Multiple calls compose in
// FIFO order: hooks from earlier calls fire before hooks from later
// ones, for the same signal.
func WithHooks[T any](ctx context.Context, hooks Hooks[T]) context.Context {
	existing, _ := ctx.Value(hooksKey[T]{}).(*hooksContainer[T])
	if existing == nil {
		return context.WithValue(ctx, hooksKey[T]{}, &hooksContainer[T]{sets: []Hooks[T]{hooks}})
	}
	sets := make([]Hooks[T], len(existing.sets)+1)
	copy(sets, existing.sets)
	sets[len(existing.sets)] = hooks
	return context.WithValue(ctx, hooksKey[T]{}, &hooksContainer[T]{sets: sets})
}

func hooksFrom[T any](ctx context.Context) []Hooks[T] {
	c, _ := ctx.Value(hooksKey[T]{}).(*hooksContainer[T])
	if c == nil {
		return nil
	}
	return c.sets
}

func fireOpen[T any](sets []Hooks[T]) {
	for _, h := range sets {
		if h.OnOpen != nil {
			h.OnOpen()
		}
	}
}

func fireReceive[T any](sets []Hooks[T], item T) {
	for _, h := range sets {
		if h.OnReceive != nil {
			h.OnReceive(item)
		}
	}
}

func fireComplete[T any](sets []Hooks[T]) {
	for _, h := range sets {
		if h.OnComplete != nil {
			h.OnComplete()
		}
	}
}

func fireError[T any](sets []Hooks[T], err error) {
	for _, h := range sets {
		if h.OnError != nil {
			h.OnError(err)
		}
	}
}

// Safe wraps hooks so a panic inside any callback is recovered and
// handed to onPanic instead of unwinding the subscription. If onPanic
// is nil, panics are silently dropped.
func Safe[T any](hooks Hooks[T], onPanic func(any)) Hooks[T] {
	if onPanic == nil {
		onPanic = func(any) {}
	}
	guard := func(f func()) func() {
		return func() {
			defer func() {
				if r := recover(); r != nil {
					onPanic(r)
				}
			}()
			f()
		}
	}
	safe := Hooks[T]{}
	if hooks.OnOpen != nil {
		safe.OnOpen = guard(hooks.OnOpen)
	}
	if hooks.OnReceive != nil {
		orig := hooks.OnReceive
		safe.OnReceive = func(item T) {
			defer func() {
				if r := recover(); r != nil {
					onPanic(r)
				}
			}()
			orig(item)
		}
	}
	if hooks.OnComplete != nil {
		safe.OnComplete = guard(hooks.OnComplete)
	}
	if hooks.OnError != nil {
		orig := hooks.OnError
		safe.OnError = func(err error) {
			defer func() {
				if r := recover(); r != nil {
					onPanic(r)
				}
			}()
			orig(err)
		}
	}
	return safe
}
