package middlewares

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes one access log line per request on the "http" logger.
func Logger() gin.HandlerFunc {
	return ginzap.GinzapWithConfig(zap.L().Named("http"), &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        false,
		Context: func(c *gin.Context) []zapcore.Field {
			return []zapcore.Field{zap.String(RequestIDKey, c.GetString(RequestIDKey))}
		},
	})
}

// Recovery turns a panicking handler into a 500 and logs the stack.
func Recovery() gin.HandlerFunc {
	return ginzap.RecoveryWithZap(zap.L().Named("http"), true)
}
