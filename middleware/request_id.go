package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Mishana2007/podarok/pkg/logging"
)

const RequestIDKey = "request_id"

// RequestID tags every request with a UUID and writes one access log line
// when the handler finishes.
func RequestID(ctx *gin.Context) {
	id := uuid.NewString()
	ctx.Set(RequestIDKey, id)
	ctx.Header("X-Request-ID", id)

	start := time.Now()
	ctx.Next()

	logging.Info("request",
		zap.String("request_id", id),
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.Request.URL.Path),
		zap.Int("status", ctx.Writer.Status()),
		zap.Duration("took", time.Since(start)),
	)
}
