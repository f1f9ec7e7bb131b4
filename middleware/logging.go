package middleware

import (
	"time"

	"calculator-service/calculator"
	"calculator-service/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggingMiddleware - HTTP 요청 로깅 미들웨어
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// 요청 처리 전
		c.Next()

		// 요청 처리 후 로깅
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000),
		}
		if last := c.Errors.Last(); last != nil {
			fields = append(fields, zap.String("error_kind", calculator.KindOf(last.Err).String()))
		}

		logger.Logger.Info("HTTP 요청", fields...)
	}
}
