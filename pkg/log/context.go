package log

import (
	"context"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithActor tags the request logger in ctx with the authenticated account id,
// so audit and error entries written later in the request carry it.
func WithActor(ctx context.Context, accountID string) context.Context {
	return WithLogger(ctx, Ctx(ctx).With().Str(FieldUserID, accountID).Logger())
}

// Ctx returns the request logger from ctx, or the global logger outside a request.
func Ctx(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return L()
	}
	if l, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
		return l
	}
	return L()
}
