package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ContextRequestIDKey = "request_id"

// RequestID assigns a UUID to every request and echoes it in the
// X-Request-ID response header. Incoming IDs from trusted proxies are
// reused so log lines can be correlated across services.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		ctx.Set(ContextRequestIDKey, id)
		ctx.Writer.Header().Set("X-Request-ID", id)
		ctx.Next()
	}
}
