package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"devflow/pkg/response"
)

const (
	DefaultRequestsPerMin = 60

	limiterCapacity = 1000
	limiterTTL      = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client key. Buckets idle for
// limiterTTL are forgotten, so a returning client starts full.
type rateLimiter struct {
	mu      sync.Mutex
	buckets *expirable.LRU[string, *rate.Limiter]
	rate    rate.Limit
	burst   int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = DefaultRequestsPerMin
	}
	return &rateLimiter{
		buckets: expirable.NewLRU[string, *rate.Limiter](limiterCapacity, nil, limiterTTL),
		rate:    rate.Every(time.Minute / time.Duration(requestsPerMin)),
		burst:   max(requestsPerMin/10, 1),
	}
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	bucket, ok := rl.buckets.Get(key)
	if !ok {
		bucket = rate.NewLimiter(rl.rate, rl.burst)
		rl.buckets.Add(key, bucket)
	}
	rl.mu.Unlock()
	return bucket.Allow()
}

// RateLimit throttles requests per client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !m.limiter.allow(ip) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %s over %s", ip, c.FullPath())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
