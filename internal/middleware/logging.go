package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/logger"
)

// AccessLog writes one structured line per request. Server errors are
// logged at error level, client errors at warn.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		log := logger.WithRequestID(GetRequestID(c))
		ctx := c.Request.Context()
		switch {
		case status >= 500:
			log.ErrorContext(ctx, "request completed", attrs...)
		case status >= 400:
			log.WarnContext(ctx, "request completed", attrs...)
		default:
			log.InfoContext(ctx, "request completed", attrs...)
		}
	}
}
