package v1

import (
	"fmt"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request through log.
// Server errors also carry the errors recorded on the context.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		line := fmt.Sprintf("%s %s %d %s", ctx.Request.Method, ctx.Request.URL.Path, status, time.Since(start))

		switch {
		case status >= 500:
			log.Error(line, " ", ctx.Errors.String())
		case status >= 400:
			log.Warn(line)
		default:
			log.Info(line)
		}
	}
}
