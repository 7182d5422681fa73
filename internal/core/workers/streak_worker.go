// Package workers hosts the streak refresher that keeps the streak cache
// warm off the request path. Entry writes enqueue a job; the worker recomputes
// the habit's streaks and stores them under today's date key.
package workers

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/engine"
	"github.com/sirupsen/logrus"
)

// The worker only reads, so it sees narrow views of the repositories.
type HabitRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
}

type EntryRepository interface {
	ListByHabitID(ctx context.Context, habitID string, from, to string) ([]*domain.DailyEntry, error)
}

// StreakJob asks for one habit's streaks to be recomputed.
type StreakJob struct {
	HabitID string
	UserID  string
}

type StreakWorker struct {
	habitRepo HabitRepository
	entryRepo EntryRepository
	cache     domain.StreakCache
	now       func() time.Time
	jobs      chan StreakJob
}

func NewStreakWorker(habitRepo HabitRepository, entryRepo EntryRepository, cache domain.StreakCache, now func() time.Time) *StreakWorker {
	return &StreakWorker{
		habitRepo: habitRepo,
		entryRepo: entryRepo,
		cache:     cache,
		now:       now,
		jobs:      make(chan StreakJob, 100),
	}
}

// Start launches the processing goroutine. It runs until ctx is cancelled;
// jobs still queued at shutdown are dropped, the next read recomputes them.
func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		logrus.Info("streak worker started")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				logrus.Info("streak worker shutting down")
				return
			}
		}
	}()
}

// Enqueue submits a job without ever blocking the caller. When the buffer is
// full the job is dropped: the cache entry goes stale, not wrong, and the
// next cache miss recomputes it.
func (w *StreakWorker) Enqueue(job StreakJob) {
	select {
	case w.jobs <- job:
	default:
		logrus.WithField("habit_id", job.HabitID).Warn("streak worker queue full, dropping job")
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	log := logrus.WithFields(logrus.Fields{
		"habit_id": job.HabitID,
		"user_id":  job.UserID,
	})

	habit, err := w.habitRepo.GetByID(ctx, job.HabitID)
	if err != nil {
		log.WithError(err).Warn("streak refresh: habit lookup failed")
		return
	}

	entries, err := w.entryRepo.ListByHabitID(ctx, job.HabitID, "", "")
	if err != nil {
		log.WithError(err).Warn("streak refresh: loading entries failed")
		return
	}

	now := w.now()
	streak, err := engine.CalculateHabitStreak(habit, entries, now)
	if err != nil {
		log.WithError(err).Error("streak refresh: calculation failed")
		return
	}

	dateKey := calendar.FormatDate(calendar.Today(now))
	if err := w.cache.Set(ctx, job.HabitID, dateKey, streak); err != nil {
		log.WithError(err).Warn("streak refresh: cache write failed")
		return
	}

	log.WithFields(logrus.Fields{
		"daily":  streak.CurrentDailyStreak,
		"weekly": streak.CurrentWeeklyStreak,
	}).Debug("streak cache refreshed")
}
