package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupTestRedis(t *testing.T) *redis.Client {
	_ = godotenv.Load("../../../../../.env")

	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       1,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("Skipping integration test (Redis down): %v", err)
	}

	rdb.FlushDB(ctx)
	return rdb
}

func limitedRouter(rdb *redis.Client, limit int) *gin.Engine {
	router := gin.New()
	router.Use(RateLimiterMiddleware(rdb, limit, time.Minute))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func hit(router *gin.Engine, ip, userID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Forwarded-For", ip)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterMiddleware_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb := setupTestRedis(t)
	defer rdb.Close()

	ctx := context.Background()

	t.Run("Success: requests under the limit pass with headers", func(t *testing.T) {
		rdb.FlushDB(ctx)

		limit := 5
		router := limitedRouter(rdb, limit)

		for i := 1; i <= limit; i++ {
			w := hit(router, "192.168.1.100", "")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, strconv.Itoa(limit), w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, strconv.Itoa(limit-i), w.Header().Get("X-RateLimit-Remaining"))
		}
	})

	t.Run("Fail: request over the limit is rejected", func(t *testing.T) {
		rdb.FlushDB(ctx)

		router := limitedRouter(rdb, 2)
		ip := "192.168.1.101"

		assert.Equal(t, http.StatusOK, hit(router, ip, "").Code)
		assert.Equal(t, http.StatusOK, hit(router, ip, "").Code)

		blocked := hit(router, ip, "")
		assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
		assert.Contains(t, blocked.Body.String(), "rate limit exceeded")
		assert.Equal(t, "0", blocked.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, blocked.Header().Get("Retry-After"))
	})

	t.Run("Edge Case: anonymous traffic is bucketed per client IP", func(t *testing.T) {
		rdb.FlushDB(ctx)

		router := limitedRouter(rdb, 1)

		assert.Equal(t, http.StatusOK, hit(router, "10.0.0.1", "").Code)
		assert.Equal(t, http.StatusTooManyRequests, hit(router, "10.0.0.1", "").Code)
		assert.Equal(t, http.StatusOK, hit(router, "10.0.0.2", "").Code)
	})

	t.Run("Edge Case: scoped users on one IP get separate buckets", func(t *testing.T) {
		rdb.FlushDB(ctx)

		router := limitedRouter(rdb, 1)
		ip := "10.0.0.9"

		assert.Equal(t, http.StatusOK, hit(router, ip, "user-a").Code)
		assert.Equal(t, http.StatusTooManyRequests, hit(router, ip, "user-a").Code)
		assert.Equal(t, http.StatusOK, hit(router, ip, "user-b").Code)
		assert.Equal(t, http.StatusOK, hit(router, ip, "").Code,
			"the anonymous IP bucket is independent of user buckets")
	})
}

func TestRateLimiterMiddleware_FailOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	badRdb := redis.NewClient(&redis.Options{
		Addr: "localhost:1",
	})
	defer badRdb.Close()

	router := limitedRouter(badRdb, 1)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(router, "10.0.0.3", "user-a").Code,
			"an unreachable Redis must never block traffic")
	}
}
