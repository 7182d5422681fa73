package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsService(habits *MockHabitRepo, entries *MockEntryRepo, cache *MockStreakCache) *services.StatsService {
	return services.NewStatsService(habits, entries, cache, clockAt("2025-03-12", 20))
}

func seedBinaryWeek(t *testing.T, entries *MockEntryRepo, habitID, userID, monday string, days int) {
	t.Helper()
	wd := calendar.WeekDates(calendar.MustParseDate(monday))
	for _, d := range wd[:days] {
		require.NoError(t, entries.Upsert(context.Background(), domain.NewDailyEntry(habitID, userID, d, 1, nil)))
	}
}

func TestStatsService_WeeklyStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: one habit, streak included", func(t *testing.T) {
		habits := NewMockHabitRepo()
		entries := NewMockEntryRepo()
		habits.store["h1"] = habitFixture("h1", "user-1", domain.HabitTypeNumeric, 70)
		require.NoError(t, entries.Upsert(ctx, domain.NewDailyEntry("h1", "user-1", "2025-03-10", 20, nil)))
		require.NoError(t, entries.Upsert(ctx, domain.NewDailyEntry("h1", "user-1", "2025-03-11", 10, nil)))
		svc := newStatsService(habits, entries, NewMockStreakCache())

		weeks, err := svc.WeeklyStats(ctx, "user-1", "h1", "")

		require.NoError(t, err)
		require.Len(t, weeks, 1)
		week := weeks[0]
		assert.Equal(t, "2025-03-10", week.WeekStart)
		assert.Equal(t, 30.0, week.Total)
		assert.Equal(t, 70.0, week.Goal)
		assert.True(t, week.IsOnTrack)
		assert.Equal(t, 43, week.CompletionPercentage)
		assert.Equal(t, 2, week.Streak, "both logged days cleared their gate")
	})

	t.Run("Success: all habits, archived excluded", func(t *testing.T) {
		habits := NewMockHabitRepo()
		entries := NewMockEntryRepo()
		habits.store["a"] = habitFixture("a", "user-1", domain.HabitTypeBinary, 7)
		habits.store["b"] = habitFixture("b", "user-1", domain.HabitTypeNumeric, 70)
		archived := habitFixture("c", "user-1", domain.HabitTypeBinary, 7)
		archived.Archived = true
		habits.store["c"] = archived
		svc := newStatsService(habits, entries, NewMockStreakCache())

		weeks, err := svc.WeeklyStats(ctx, "user-1", "", "")

		require.NoError(t, err)
		require.Len(t, weeks, 2)
	})

	t.Run("Success: any anchor date lands on its Monday", func(t *testing.T) {
		habits := NewMockHabitRepo()
		habits.store["h1"] = habitFixture("h1", "user-1", domain.HabitTypeBinary, 7)
		svc := newStatsService(habits, NewMockEntryRepo(), NewMockStreakCache())

		weeks, err := svc.WeeklyStats(ctx, "user-1", "h1", "2025-03-05")

		require.NoError(t, err)
		require.Len(t, weeks, 1)
		assert.Equal(t, "2025-03-03", weeks[0].WeekStart)
	})

	t.Run("Fail: malformed week anchor", func(t *testing.T) {
		habits := NewMockHabitRepo()
		habits.store["h1"] = habitFixture("h1", "user-1", domain.HabitTypeBinary, 7)
		svc := newStatsService(habits, NewMockEntryRepo(), NewMockStreakCache())

		_, err := svc.WeeklyStats(ctx, "user-1", "h1", "mid-march")

		assert.ErrorIs(t, err, calendar.ErrInvalidDate)
	})

	t.Run("Fail: unknown habit", func(t *testing.T) {
		svc := newStatsService(NewMockHabitRepo(), NewMockEntryRepo(), NewMockStreakCache())

		_, err := svc.WeeklyStats(ctx, "user-1", "ghost", "")

		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Security: another user's habit is unauthorized", func(t *testing.T) {
		habits := NewMockHabitRepo()
		habits.store["h1"] = habitFixture("h1", "user-1", domain.HabitTypeBinary, 7)
		svc := newStatsService(habits, NewMockEntryRepo(), NewMockStreakCache())

		_, err := svc.WeeklyStats(ctx, "user-2", "h1", "")

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestStatsService_HabitStreak(t *testing.T) {
	ctx := context.Background()

	setup := func() (*MockHabitRepo, *MockEntryRepo, *MockStreakCache) {
		habits := NewMockHabitRepo()
		entries := NewMockEntryRepo()
		habits.store["h1"] = habitFixture("h1", "user-1", domain.HabitTypeBinary, 7)
		for _, d := range []string{"2025-03-10", "2025-03-11", "2025-03-12"} {
			require.NoError(t, entries.Upsert(ctx, domain.NewDailyEntry("h1", "user-1", d, 1, nil)))
		}
		return habits, entries, NewMockStreakCache()
	}

	t.Run("Success: computes on a miss and memoizes for the day", func(t *testing.T) {
		habits, entries, cache := setup()
		svc := newStatsService(habits, entries, cache)

		first, err := svc.HabitStreak(ctx, "h1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, 3, first.CurrentDailyStreak)
		assert.Equal(t, 1, cache.sets)
		assert.Equal(t, 1, entries.listCalls)

		second, err := svc.HabitStreak(ctx, "h1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, entries.listCalls, "the second read must come from the cache")
	})

	t.Run("Success: cache read trouble falls back to computing", func(t *testing.T) {
		habits, entries, cache := setup()
		cache.getErr = errors.New("redis down")
		svc := newStatsService(habits, entries, cache)

		streak, err := svc.HabitStreak(ctx, "h1", "user-1")

		require.NoError(t, err)
		assert.Equal(t, 3, streak.CurrentDailyStreak)
	})

	t.Run("Success: cache write trouble does not fail the request", func(t *testing.T) {
		habits, entries, cache := setup()
		cache.setErr = errors.New("redis down")
		svc := newStatsService(habits, entries, cache)

		streak, err := svc.HabitStreak(ctx, "h1", "user-1")

		require.NoError(t, err)
		assert.Equal(t, 3, streak.CurrentDailyStreak)
	})

	t.Run("Fail: unknown habit", func(t *testing.T) {
		svc := newStatsService(NewMockHabitRepo(), NewMockEntryRepo(), NewMockStreakCache())

		_, err := svc.HabitStreak(ctx, "ghost", "user-1")

		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Security: another user's habit is unauthorized", func(t *testing.T) {
		habits, entries, cache := setup()
		svc := newStatsService(habits, entries, cache)

		_, err := svc.HabitStreak(ctx, "h1", "user-2")

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestStatsService_OverallViews(t *testing.T) {
	ctx := context.Background()

	// One binary habit with two fully complete weeks and an on-track current
	// week, observed Wednesday evening.
	setup := func(t *testing.T) (*MockHabitRepo, *MockEntryRepo) {
		habits := NewMockHabitRepo()
		entries := NewMockEntryRepo()
		habits.store["h1"] = habitFixture("h1", "user-1", domain.HabitTypeBinary, 7)
		seedBinaryWeek(t, entries, "h1", "user-1", "2025-02-24", 6)
		seedBinaryWeek(t, entries, "h1", "user-1", "2025-03-03", 6)
		seedBinaryWeek(t, entries, "h1", "user-1", "2025-03-10", 3)
		return habits, entries
	}

	t.Run("Success: overall streak counts weeks plus the live days", func(t *testing.T) {
		habits, entries := setup(t)
		svc := newStatsService(habits, entries, NewMockStreakCache())

		streak, err := svc.OverallStreak(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, 17, streak.CurrentStreak)
		assert.True(t, streak.IsCurrentWeekOnTrack)
		assert.Equal(t, domain.StatusOnTrack, streak.WeeklyStatus)
	})

	t.Run("Success: overall stats default to the current week", func(t *testing.T) {
		habits, entries := setup(t)
		svc := newStatsService(habits, entries, NewMockStreakCache())

		stats, err := svc.OverallStats(ctx, "user-1", "")

		require.NoError(t, err)
		assert.Equal(t, "2025-03-10", stats.WeekStart)
		assert.Equal(t, 1, stats.TotalHabits)
		assert.Equal(t, 1, stats.HabitsOnTrack)
		assert.Equal(t, 3, stats.WeeklyPerfectDays)
	})

	t.Run("Fail: malformed week anchor", func(t *testing.T) {
		habits, entries := setup(t)
		svc := newStatsService(habits, entries, NewMockStreakCache())

		_, err := svc.OverallStats(ctx, "user-1", "w11")

		assert.ErrorIs(t, err, calendar.ErrInvalidDate)
	})

	t.Run("Success: dashboard sections agree with each other", func(t *testing.T) {
		habits, entries := setup(t)
		svc := newStatsService(habits, entries, NewMockStreakCache())

		dash, err := svc.GetDashboard(ctx, "user-1")

		require.NoError(t, err)
		require.NotNil(t, dash.Overall)
		require.NotNil(t, dash.Pacing)
		assert.Equal(t, "2025-03-10", dash.Overall.WeekStart)
		assert.Equal(t, dash.Pacing.CurrentStreak, dash.Overall.AllHabitsWeeklyStreak)
	})

	t.Run("Fail: repository trouble surfaces", func(t *testing.T) {
		habits := NewMockHabitRepo()
		habits.simulateError = errors.New("db down")
		svc := newStatsService(habits, NewMockEntryRepo(), NewMockStreakCache())

		_, err := svc.GetDashboard(ctx, "user-1")

		assert.Error(t, err)
	})
}
