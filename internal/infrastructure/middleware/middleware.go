package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler"
	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler/dto/response"
)

const CommandIDKey = "command_id"

type commandIDKey struct{}

// Middleware wraps the handler registered under a function name.
type Middleware func(name string, next handler.Func) handler.Func

// Chain applies middlewares so that the first one runs outermost.
func Chain(name string, h handler.Func, mws ...Middleware) handler.Func {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](name, h)
	}
	return h
}

// CommandID tags every command with a fresh id unless the caller supplied one.
func CommandID() Middleware {
	return func(_ string, next handler.Func) handler.Func {
		return func(ctx context.Context, args map[string]any) response.Result {
			if CommandIDFrom(ctx) == "" {
				ctx = WithCommandID(ctx, uuid.NewString())
			}
			return next(ctx, args)
		}
	}
}

func WithCommandID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, commandIDKey{}, id)
}

func CommandIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(commandIDKey{}).(string)
	return id
}
