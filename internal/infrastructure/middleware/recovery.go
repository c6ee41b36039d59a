package middleware

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler"
	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/personal-assistant/internal/pkg/apperror"
)

func Recovery(logger *zap.Logger) Middleware {
	return func(name string, next handler.Func) handler.Func {
		return func(ctx context.Context, args map[string]any) (res response.Result) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered",
						zap.Any("error", r),
						zap.String("function", name),
						zap.String(CommandIDKey, CommandIDFrom(ctx)),
						zap.Stack("stack"),
					)
					res = response.Fail(apperror.CodeInternal, fmt.Sprintf("Error executing %s: internal error", name))
				}
			}()
			return next(ctx, args)
		}
	}
}
