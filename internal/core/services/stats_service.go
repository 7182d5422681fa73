package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/config"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/engine"
)

type StatsService struct {
	habitRepo domain.HabitRepository
	entryRepo domain.EntryRepository
	cache     domain.StreakCache
	now       func() time.Time
}

func NewStatsService(habitRepo domain.HabitRepository, entryRepo domain.EntryRepository, cache domain.StreakCache, now func() time.Time) *StatsService {
	return &StatsService{
		habitRepo: habitRepo,
		entryRepo: entryRepo,
		cache:     cache,
		now:       now,
	}
}

// Dashboard bundles the aggregate payloads the home screen renders in one
// request: the week's stats and the live pacing.
type Dashboard struct {
	Overall *domain.OverallStats  `json:"overall"`
	Pacing  *domain.OverallStreak `json:"pacing"`
}

// resolveWeek turns an optional week_start parameter into the Monday of the
// requested week, defaulting to the current one.
func (s *StatsService) resolveWeek(weekStart string, now time.Time) (time.Time, error) {
	if weekStart == "" {
		return calendar.WeekStart(calendar.Today(now)), nil
	}
	d, err := calendar.ParseDate(weekStart)
	if err != nil {
		return time.Time{}, err
	}
	return calendar.WeekStart(d), nil
}

// loadUserData fetches the user's live habits and their full entry history
// grouped by habit. Streak walks need everything, weekly slices are cut by
// the engine, so one round trip serves both.
func (s *StatsService) loadUserData(ctx context.Context, userID string) ([]*domain.Habit, map[string][]*domain.DailyEntry, error) {
	habits, err := s.habitRepo.ListByUserID(ctx, userID, false)
	if err != nil {
		return nil, nil, err
	}

	entries, err := s.entryRepo.ListByUserID(ctx, userID, "", "")
	if err != nil {
		return nil, nil, err
	}

	byHabit := make(map[string][]*domain.DailyEntry, len(habits))
	for _, e := range entries {
		byHabit[e.HabitID] = append(byHabit[e.HabitID], e)
	}

	return habits, byHabit, nil
}

func (s *StatsService) weeklyFor(habit *domain.Habit, entries []*domain.DailyEntry, weekStart, now time.Time) (*domain.WeeklyStats, error) {
	week, err := engine.CalculateWeeklyStats(habit, entries, weekStart, now)
	if err != nil {
		return nil, err
	}

	streak, err := engine.CalculateHabitStreak(habit, entries, now)
	if err != nil {
		return nil, err
	}
	week.Streak = streak.CurrentDailyStreak

	return week, nil
}

// WeeklyStats returns one week of progress, for a single habit when habitID
// is set or for every live habit otherwise. weekStart is optional and
// normalizes to its Monday.
func (s *StatsService) WeeklyStats(ctx context.Context, userID, habitID, weekStart string) ([]*domain.WeeklyStats, error) {
	now := s.now()
	ws, err := s.resolveWeek(weekStart, now)
	if err != nil {
		return nil, err
	}

	if habitID != "" {
		habit, err := s.habitRepo.GetByID(ctx, habitID)
		if err != nil {
			return nil, err
		}
		if habit.UserID != userID {
			return nil, domain.ErrUnauthorized
		}

		entries, err := s.entryRepo.ListByHabitID(ctx, habitID, "", "")
		if err != nil {
			return nil, err
		}

		week, err := s.weeklyFor(habit, entries, ws, now)
		if err != nil {
			return nil, err
		}
		return []*domain.WeeklyStats{week}, nil
	}

	habits, byHabit, err := s.loadUserData(ctx, userID)
	if err != nil {
		return nil, err
	}

	weeks := make([]*domain.WeeklyStats, 0, len(habits))
	for _, h := range habits {
		week, err := s.weeklyFor(h, byHabit[h.ID], ws, now)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, week)
	}
	return weeks, nil
}

func (s *StatsService) OverallStats(ctx context.Context, userID, weekStart string) (*domain.OverallStats, error) {
	now := s.now()
	ws, err := s.resolveWeek(weekStart, now)
	if err != nil {
		return nil, err
	}

	habits, byHabit, err := s.loadUserData(ctx, userID)
	if err != nil {
		return nil, err
	}

	return engine.CalculateOverallStats(habits, byHabit, ws, now)
}

// HabitStreak returns the habit's streaks, memoized per calendar day. Cache
// trouble is logged and absorbed: the engine recomputes and the request
// succeeds either way.
func (s *StatsService) HabitStreak(ctx context.Context, habitID, userID string) (*domain.StreakData, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, domain.ErrUnauthorized
	}

	log := config.WithContext(ctx)
	now := s.now()
	dateKey := calendar.FormatDate(calendar.Today(now))

	cached, err := s.cache.Get(ctx, habitID, dateKey)
	if err != nil {
		log.WithError(err).Warn("streak cache read failed, recomputing")
	} else if cached != nil {
		return cached, nil
	}

	entries, err := s.entryRepo.ListByHabitID(ctx, habitID, "", "")
	if err != nil {
		return nil, err
	}

	streak, err := engine.CalculateHabitStreak(habit, entries, now)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, habitID, dateKey, streak); err != nil {
		log.WithError(err).Warn("streak cache write failed")
	}

	return streak, nil
}

func (s *StatsService) OverallStreak(ctx context.Context, userID string) (*domain.OverallStreak, error) {
	habits, byHabit, err := s.loadUserData(ctx, userID)
	if err != nil {
		return nil, err
	}

	return engine.CalculateOverallStreak(habits, byHabit, s.now())
}

// GetDashboard assembles overall stats and pacing from one data snapshot, so
// the two sections can never disagree about the same instant.
func (s *StatsService) GetDashboard(ctx context.Context, userID string) (*Dashboard, error) {
	now := s.now()

	habits, byHabit, err := s.loadUserData(ctx, userID)
	if err != nil {
		return nil, err
	}

	overall, err := engine.CalculateOverallStats(habits, byHabit, calendar.WeekStart(calendar.Today(now)), now)
	if err != nil {
		return nil, err
	}

	pacing, err := engine.CalculateOverallStreak(habits, byHabit, now)
	if err != nil {
		return nil, err
	}

	return &Dashboard{Overall: overall, Pacing: pacing}, nil
}
