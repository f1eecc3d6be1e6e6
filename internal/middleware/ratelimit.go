package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimit throttles requests per client IP. With a Redis client it keeps a
// shared fixed window (one counter per ip per minute), so the limit holds
// across replicas; without one it falls back to an in-process token bucket.
func RateLimit(rdb *redis.Client, perMinute int) gin.HandlerFunc {
	if rdb != nil {
		return redisRateLimit(rdb, perMinute)
	}
	return localRateLimit(perMinute)
}

func redisRateLimit(rdb *redis.Client, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), time.Now().Unix()/60)

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// Redis being down should not take the API with it.
			slog.Warn("rate limiter unavailable, letting request through", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(c.Request.Context(), key, time.Minute)
		}
		if count > int64(perMinute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

func localRateLimit(perMinute int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
			limiters[ip] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
