package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
)

var (
	_ domain.StreakCache = (*RedisStreakCache)(nil)
	_ domain.StreakCache = (*MemoryStreakCache)(nil)
)

// Streak keys carry the calendar date they were computed for, so a cached
// value can never leak into the next day. The TTL only bounds Redis memory.
const streakTTL = 48 * time.Hour

type RedisStreakCache struct {
	client *redis.Client
}

func NewRedisStreakCache(client *redis.Client) *RedisStreakCache {
	return &RedisStreakCache{client: client}
}

func streakKey(habitID, dateKey string) string {
	return fmt.Sprintf("streaks:%s:%s", habitID, dateKey)
}

func (c *RedisStreakCache) Get(ctx context.Context, habitID, dateKey string) (*domain.StreakData, error) {
	key := streakKey(habitID, dateKey)

	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var data domain.StreakData
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		// Corrupted payload: drop it and report a miss.
		c.client.Del(ctx, key)
		return nil, nil
	}

	return &data, nil
}

func (c *RedisStreakCache) Set(ctx context.Context, habitID, dateKey string, data *domain.StreakData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, streakKey(habitID, dateKey), payload, streakTTL).Err()
}

type memoStreak struct {
	dateKey string
	data    domain.StreakData
}

// MemoryStreakCache keeps the latest computation per habit. It backs tests
// and Redis-less deployments; a new dateKey displaces the old one, so the
// map never outgrows the habit count.
type MemoryStreakCache struct {
	store map[string]memoStreak

	mu sync.RWMutex
}

func NewMemoryStreakCache() *MemoryStreakCache {
	return &MemoryStreakCache{
		store: make(map[string]memoStreak),
	}
}

func (c *MemoryStreakCache) Get(ctx context.Context, habitID, dateKey string) (*domain.StreakData, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	memo, ok := c.store[habitID]
	if !ok || memo.dateKey != dateKey {
		return nil, nil
	}

	data := memo.data
	return &data, nil
}

func (c *MemoryStreakCache) Set(ctx context.Context, habitID, dateKey string, data *domain.StreakData) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[habitID] = memoStreak{dateKey: dateKey, data: *data}
	return nil
}
