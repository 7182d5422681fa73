package engine

import (
	"math"
	"time"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
)

func performanceOf(h *domain.Habit, w *domain.WeeklyStats) *domain.HabitPerformance {
	return &domain.HabitPerformance{
		HabitID:              h.ID,
		Name:                 h.Name,
		CompletionPercentage: w.CompletionPercentage,
	}
}

// CalculateOverallStats aggregates one week across every habit, as seen at
// now. Archived habits are skipped even if passed. entriesByHabit carries
// each habit's full history: weekly slices are cut internally and the
// overall streak needs everything anyway.
//
// Habits whose pro-rated goal is zero for the week, either because the goal
// is zero or because the habit did not exist yet, stay in TotalHabits but
// are excluded from every ratio so they can never drag the average to zero.
func CalculateOverallStats(habits []*domain.Habit, entriesByHabit map[string][]*domain.DailyEntry, weekStart, now time.Time) (*domain.OverallStats, error) {
	ws := calendar.WeekStart(weekStart)
	today := calendar.Today(now)

	stats := &domain.OverallStats{WeekStart: calendar.FormatDate(ws)}

	type habitWeek struct {
		habit *domain.Habit
		week  *domain.WeeklyStats
	}
	var applicable []habitWeek

	for _, h := range habits {
		if h.Archived {
			continue
		}
		stats.TotalHabits++

		week, err := CalculateWeeklyStats(h, entriesByHabit[h.ID], ws, now)
		if err != nil {
			return nil, err
		}

		goal, activeDays := proRatedGoal(h, ws)
		if activeDays == 0 || goal <= 0 {
			continue
		}
		applicable = append(applicable, habitWeek{habit: h, week: week})
	}

	pctSum := 0
	for _, hw := range applicable {
		pctSum += hw.week.CompletionPercentage
		if hw.week.IsOnTrack {
			stats.HabitsOnTrack++
		}

		// Strict comparisons keep the first habit on ties, so input order
		// (display order) decides.
		if stats.BestPerformingHabit == nil || hw.week.CompletionPercentage > stats.BestPerformingHabit.CompletionPercentage {
			stats.BestPerformingHabit = performanceOf(hw.habit, hw.week)
		}
		if !hw.week.IsOnTrack {
			if stats.NeedsAttentionHabit == nil || hw.week.CompletionPercentage < stats.NeedsAttentionHabit.CompletionPercentage {
				stats.NeedsAttentionHabit = performanceOf(hw.habit, hw.week)
			}
		}
	}
	if len(applicable) > 0 {
		stats.OverallCompletionPercentage = int(math.Round(float64(pctSum) / float64(len(applicable))))
	}

	stats.WeeklyPerfectDays = countPerfectDays(habits, entriesByHabit, ws, today)

	overall, err := CalculateOverallStreak(habits, entriesByHabit, now)
	if err != nil {
		return nil, err
	}
	stats.AllHabitsWeeklyStreak = overall.CurrentStreak

	return stats, nil
}

// countPerfectDays counts the week's days, up to today, on which every habit
// existing that day (by creation date) logged a complete entry. A day with
// no habits yet is never perfect: vacuous success does not count. Days after
// today are not judged at all.
func countPerfectDays(habits []*domain.Habit, entriesByHabit map[string][]*domain.DailyEntry, weekStart, today time.Time) int {
	byDate := make(map[string]map[string]*domain.DailyEntry, len(habits))
	for _, h := range habits {
		if h.Archived {
			continue
		}
		dates := make(map[string]*domain.DailyEntry)
		for _, e := range entriesByHabit[h.ID] {
			if e.HabitID == h.ID {
				dates[e.Date] = e
			}
		}
		byDate[h.ID] = dates
	}

	end := calendar.WeekEnd(weekStart)
	if end.After(today) {
		end = today
	}

	perfect := 0
	for d := weekStart; !d.After(end); d = calendar.AddDays(d, 1) {
		key := calendar.FormatDate(d)

		existing := 0
		allComplete := true
		for _, h := range habits {
			if h.Archived || calendar.DateOf(h.CreatedAt).After(d) {
				continue
			}
			existing++
			if !IsEntryComplete(byDate[h.ID][key], h) {
				allComplete = false
				break
			}
		}
		if existing > 0 && allComplete {
			perfect++
		}
	}
	return perfect
}
