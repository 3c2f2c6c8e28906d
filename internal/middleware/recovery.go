package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/stpnv0/VaccineBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a 500 with the usual error body.
// It must run after RequestID so the log line carries the request id.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.Any("panic", rec),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.String("request_id", c.GetString(RequestIDKey)),
				logger.String("stack", string(debug.Stack())),
			)
			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.ErrorResponse{Error: "internal server error"},
			)
		}()

		c.Next()
	}
}
