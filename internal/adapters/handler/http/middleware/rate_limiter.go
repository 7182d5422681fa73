package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RateLimiterMiddleware enforces a fixed window backed by Redis INCR+EXPIRE.
// Requests are bucketed by the X-User-ID scope when the header is present and
// by client IP otherwise, so one busy account cannot spend a shared NAT's
// budget. It fails open: when Redis misbehaves the request goes through
// unlimited rather than turning a cache outage into an API outage.
func RateLimiterMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := c.GetHeader(userIDHeader)
		if scope == "" {
			scope = c.ClientIP()
		}
		key := "ratelimit:" + scope

		ctx := c.Request.Context()
		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logrus.WithError(err).Warn("rate limiter skipped, redis unreachable")
			c.Next()
			return
		}

		// The first hit in a window owns the expiry. If that write fails the
		// counter would never reset, so drop the key and wave the request on.
		if count == 1 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				logrus.WithError(err).Warn("rate limiter expire failed, dropping key")
				rdb.Del(ctx, key)
				c.Next()
				return
			}
		}

		ttl, err := rdb.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

		if count > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(ttl.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
