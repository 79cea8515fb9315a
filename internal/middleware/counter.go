package middleware

import (
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// RequestCounter counts handled requests process-wide. Counting lives in
// middleware so the core services stay free of instrumentation concerns.
type RequestCounter struct {
	count atomic.Int64
}

// NewRequestCounter creates a counter starting at zero.
func NewRequestCounter() *RequestCounter {
	return &RequestCounter{}
}

// Middleware returns a Gin handler that increments the counter per request.
func (rc *RequestCounter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc.count.Add(1)
		c.Next()
	}
}

// Count returns the current number of counted requests.
func (rc *RequestCounter) Count() int64 {
	return rc.count.Load()
}

// Reset sets the counter back to zero.
func (rc *RequestCounter) Reset() {
	rc.count.Store(0)
}
