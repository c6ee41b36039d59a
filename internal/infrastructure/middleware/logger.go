package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler"
	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler/dto/response"
)

func Logger(logger *zap.Logger) Middleware {
	return func(name string, next handler.Func) handler.Func {
		return func(ctx context.Context, args map[string]any) response.Result {
			start := time.Now()

			res := next(ctx, args)

			fields := []zap.Field{
				zap.String("function", name),
				zap.Bool("success", res.Success),
				zap.Duration("latency", time.Since(start)),
			}
			if id := CommandIDFrom(ctx); id != "" {
				fields = append(fields, zap.String(CommandIDKey, id))
			}
			if res.Code != "" {
				fields = append(fields, zap.String("code", res.Code))
			}

			switch {
			case !res.Success:
				logger.Warn("command failed", append(fields, zap.String("message", res.Message))...)
			case res.Warning != "":
				logger.Warn("command completed with warning", append(fields, zap.String("warning", res.Warning))...)
			default:
				logger.Info("command", fields...)
			}
			return res
		}
	}
}
