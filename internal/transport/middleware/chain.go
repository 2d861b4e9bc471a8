package middleware

import (
	"context"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

// Handler processes one inbound update.
type Handler func(ctx context.Context, upd domain.Update) error

// Middleware is a function that wraps a Handler.
type Middleware func(Handler) Handler

// Chain combines multiple middleware into a single Middleware.
// Middleware are applied in the order given: Chain(mw1, mw2)(handler)
// results in mw1(mw2(handler)), so mw1 executes first (outermost).
func Chain(mws ...Middleware) Middleware {
	return func(final Handler) Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
