package observe

import (
	"context"

	"github.com/rs/zerolog"
)

// WithLogging attaches hooks for type T that write one structured log
// line per signal to logger, tagged with the subscription id already
// present on ctx (see Subscribe).
func WithLogging[T any](ctx context.Context, logger zerolog.Logger) context.Context {
	return WithHooks(ctx, Hooks[T]{
		OnOpen: func() {
			logger.Debug().Str("subscription", IDFrom(ctx)).Msg("subscription opened")
		},
		OnReceive: func(item T) {
			logger.Debug().Str("subscription", IDFrom(ctx)).Interface("item", item).Msg("item received")
		},
		OnComplete: func() {
			logger.Debug().Str("subscription", IDFrom(ctx)).Msg("subscription completed")
		},
		OnError: func(err error) {
			logger.Error().Str("subscription", IDFrom(ctx)).Err(err).Msg("subscription failed")
		},
	})
}
