package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/netvendor/creditintake/config"
	"github.com/netvendor/creditintake/storage"
	u "github.com/netvendor/creditintake/utils"
)

var (
	apiLimiter     gin.HandlerFunc
	defaultLimiter gin.HandlerFunc
	limiterOnce    sync.Once
)

// ResetLimitersForTest drops the cached limiters so tests can rebuild them
// against a fresh store.
func ResetLimitersForTest() {
	apiLimiter = nil
	defaultLimiter = nil
	limiterOnce = sync.Once{}
}

func newStore(limit uint) ratelimit.Store {
	// Redis gives cross-instance counters; the in-memory store is accepted
	// per-instance limiting when no shared store is configured.
	if storage.RedisClient != nil {
		return ratelimit.RedisStore(&ratelimit.RedisOptions{
			RedisClient: storage.RedisClient,
			Rate:        time.Minute,
			Limit:       limit,
		})
	}
	return ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: limit,
	})
}

func newLimiter(limit uint) gin.HandlerFunc {
	return ratelimit.RateLimiter(newStore(limit), &ratelimit.Options{
		ErrorHandler: func(c *gin.Context, info ratelimit.Info) {
			retryAfter := time.Until(info.ResetTime).Seconds()
			c.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter))
			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))

			u.APIResponse(
				c,
				http.StatusTooManyRequests,
				"error",
				"Too many requests, please slow down",
				map[string]interface{}{
					"retry_after": retryAfter,
					"limit":       info.Limit,
				},
			)
			c.Abort()
		},
		KeyFunc: func(c *gin.Context) string {
			// Counting per (client, path) keeps one busy endpoint from
			// starving the rest.
			return c.ClientIP() + ":" + c.Request.URL.Path
		},
	})
}

// RateLimitMiddleware applies the sliding window limiter, with a tighter
// budget for API paths than for everything else
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiterOnce.Do(func() {
			conf := config.ServerConfig()
			apiLimiter = newLimiter(uint(conf.RateLimitAPI))
			defaultLimiter = newLimiter(uint(conf.RateLimitDefault))
		})

		if strings.HasPrefix(c.Request.URL.Path, "/v1/") {
			apiLimiter(c)
		} else {
			defaultLimiter(c)
		}

		c.Next()
	}
}
