package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/config"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
)

var _ domain.HabitRepository = (*CachedHabitRepository)(nil)

const habitListTTL = 30 * time.Minute

// CachedHabitRepository memoizes per-user habit lists in Redis. Every
// analytics request starts by listing the user's habits, so this is the
// hottest read in the system. Cache trouble never fails a request; the
// decorator falls through to the wrapped repository.
type CachedHabitRepository struct {
	next  domain.HabitRepository
	cache *redis.Client
}

func NewCachedHabitRepository(next domain.HabitRepository, cache *redis.Client) *CachedHabitRepository {
	return &CachedHabitRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedHabitRepository) cacheKey(userID string, includeArchived bool) string {
	if includeArchived {
		return fmt.Sprintf("habits:%s:all", userID)
	}
	return fmt.Sprintf("habits:%s:live", userID)
}

func (r *CachedHabitRepository) invalidate(ctx context.Context, userID string) {
	keys := []string{r.cacheKey(userID, false), r.cacheKey(userID, true)}
	if err := r.cache.Del(ctx, keys...).Err(); err != nil {
		config.WithContext(ctx).WithError(err).WithField("user_id", userID).
			Warn("habit cache invalidation failed")
	}
}

func (r *CachedHabitRepository) ListByUserID(ctx context.Context, userID string, includeArchived bool) ([]*domain.Habit, error) {
	log := config.WithContext(ctx)
	key := r.cacheKey(userID, includeArchived)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var habits []*domain.Habit
		if err := json.Unmarshal([]byte(val), &habits); err == nil {
			return habits, nil
		}

		log.WithField("key", key).Warn("corrupted habit cache payload, dropping key")
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.WithError(err).Warn("habit cache read failed")
	}

	habits, err := r.next.ListByUserID(ctx, userID, includeArchived)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(habits); err == nil {
		if setErr := r.cache.Set(ctx, key, data, habitListTTL).Err(); setErr != nil {
			log.WithError(setErr).Warn("habit cache write failed")
		}
	}

	return habits, nil
}

func (r *CachedHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Create(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx, habit.UserID)
	return nil
}

func (r *CachedHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Update(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx, habit.UserID)
	return nil
}

func (r *CachedHabitRepository) Delete(ctx context.Context, id string) error {
	habit, err := r.next.GetByID(ctx, id)
	if err == nil && habit != nil {
		defer r.invalidate(ctx, habit.UserID)
	}

	return r.next.Delete(ctx, id)
}
