package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobtrack-dev/jobtrack/internal/types"
)

// RequestLogger emits one structured log line per request with method,
// path, status, duration and, when available, request and user IDs.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		durationMs := float64(time.Since(start).Nanoseconds()) / float64(time.Millisecond)

		attrs := []any{
			slog.String("method", ctx.Request.Method),
			slog.String("path", ctx.Request.URL.Path),
			slog.Int("status", ctx.Writer.Status()),
			slog.Float64("duration_ms", durationMs),
		}

		if id := ctx.GetString(ContextRequestIDKey); id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}

		if v, exists := ctx.Get(types.ContextUserKey); exists {
			if user, ok := v.(AuthenticatedUser); ok {
				attrs = append(attrs, slog.Uint64("user_id", uint64(user.ID)))
			}
		}

		logger.Info("request", attrs...)
	}
}
