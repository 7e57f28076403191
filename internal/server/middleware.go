package server

import (
	"errors"
	"net/http"
	"time"

	"escrow-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is echoed back on every response
const RequestIDHeader = "X-Request-ID"

var errRateLimited = errors.New("rate limit exceeded")

// RequestIDMiddleware reuses a valid incoming request id or generates a new one
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		id = utils.GenerateRequestID()
	}
	c.Set(utils.RequestIDKey, id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(utils.RequestIDKey),
	})
}

// RateLimitMiddleware rejects clients that exhaust their token bucket with 429
func RateLimitMiddleware(limiter *ClientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP(), time.Now()) {
			utils.AbortJSONError(c, http.StatusTooManyRequests, errRateLimited, "too many requests")
			utils.Warn("RateLimitMiddleware: request throttled", map[string]any{
				"client_ip": c.ClientIP(),
				"path":      c.Request.URL.Path,
			})
			return
		}
		c.Next()
	}
}
