package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// Timeouts sized for the small payloads this service keeps in Redis: streak
// memos, habit list snapshots and rate-limit counters. A slow Redis should
// surface as a miss, not hold an API request hostage.
const (
	dialTimeout = 5 * time.Second
	opTimeout   = 3 * time.Second
)

// NewRedisClient connects and verifies the connection with a ping, so a
// misconfigured address fails at startup instead of on the first request.
func NewRedisClient(host, port, password string, dbIndex int) (*redis.Client, error) {
	addr := net.JoinHostPort(host, port)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           dbIndex,
		DialTimeout:  dialTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis unreachable at %s: %w", addr, err)
	}

	return rdb, nil
}
