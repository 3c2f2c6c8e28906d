package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/VaccineBooker/internal/metrics"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID keeps an incoming X-Request-ID or generates a new one.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := logger.InfoLevel
		switch {
		case status >= 500:
			level = logger.ErrorLevel
		case status >= 400:
			level = logger.WarnLevel
		}

		log.LogAttrs(c.Request.Context(), level, "http request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Duration("latency", time.Since(start)),
			logger.String("request_id", c.GetString(RequestIDKey)),
			logger.String("error", c.GetString("error")),
		)
	}
}

// Metrics observes request latency per matched route.
func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
