package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"blog-comments/internal/logger"
)

// AccessLog emits one structured record per request once it completes.
// Server errors are logged at error level, client errors at warn.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("route", routeLabel(c)),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		lg := logger.WithRequestID(GetRequestID(c))
		ctx := c.Request.Context()
		switch {
		case status >= 500:
			lg.ErrorContext(ctx, "HTTP request", attrs...)
		case status >= 400:
			lg.WarnContext(ctx, "HTTP request", attrs...)
		default:
			lg.InfoContext(ctx, "HTTP request", attrs...)
		}
	}
}
