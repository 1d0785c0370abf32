package middlewares

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"ircwire/internal/app/adapters/metrics"
	"net/http"
	"strconv"
	"time"
)

// RateLimit allows each client IP `requests` requests per `per`, with
// bursts up to `requests`. Zero requests disables limiting.
func (m *Middlewares) RateLimit(requests int, per time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if requests <= 0 || per <= 0 {
			c.Next()
			return
		}

		if !m.limiter(c.ClientIP(), requests, per).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

func (m *Middlewares) limiter(key string, requests int, per time.Duration) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.limiters.Get(key)
	if !ok {
		l = rate.NewLimiter(rate.Every(per/time.Duration(requests)), requests)
		m.limiters.Set(key, l)
	}
	return l
}

// Metrics counts requests by route and status.
func (m *Middlewares) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
