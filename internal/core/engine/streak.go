package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
)

// CalculateHabitStreak walks the habit's full entry history and returns its
// streak state as of now.
//
// A day succeeds when its entry is complete; a week succeeds when its total
// logged value reaches 80% of that week's pro-rated goal. Current streaks
// keep yesterday's (or last week's) run alive while the present period is
// still unlogged, so a streak only dies once a whole period passes without
// success.
func CalculateHabitStreak(habit *domain.Habit, entries []*domain.DailyEntry, now time.Time) (*domain.StreakData, error) {
	data := &domain.StreakData{HabitID: habit.ID}

	successDays := make(map[string]bool)
	weekTotals := make(map[string]float64)

	for _, e := range entries {
		if e.HabitID != habit.ID {
			continue
		}
		d, err := calendar.ParseDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("streaks for habit %s: %w", habit.ID, err)
		}
		weekTotals[calendar.FormatDate(calendar.WeekStart(d))] += e.Value

		if IsEntryComplete(e, habit) {
			successDays[e.Date] = true
			if e.Date > data.LastActiveDate {
				data.LastActiveDate = e.Date
			}
		}
	}

	today := calendar.Today(now)
	data.CurrentDailyStreak = currentRun(successDays, today, 1)
	data.LongestDailyStreak = longestRun(successDays, 1)

	successWeeks := make(map[string]bool, len(weekTotals))
	for key, total := range weekTotals {
		goal, activeDays := proRatedGoal(habit, calendar.MustParseDate(key))
		if activeDays > 0 && goal > 0 && total >= goal*CompletionThreshold {
			successWeeks[key] = true
		}
	}

	data.CurrentWeeklyStreak = currentRun(successWeeks, calendar.WeekStart(today), 7)
	data.LongestWeeklyStreak = longestRun(successWeeks, 7)

	return data, nil
}

// currentRun counts backward from anchor in step-day hops while dates stay
// in the set. A missing anchor may still start the run one hop back: an
// unfinished today does not zero a live streak, two missed periods do.
func currentRun(set map[string]bool, anchor time.Time, step int) int {
	cursor := anchor
	if !set[calendar.FormatDate(cursor)] {
		cursor = calendar.AddDays(cursor, -step)
		if !set[calendar.FormatDate(cursor)] {
			return 0
		}
	}

	count := 0
	for set[calendar.FormatDate(cursor)] {
		count++
		cursor = calendar.AddDays(cursor, -step)
	}
	return count
}

// longestRun finds the longest chain of set dates spaced exactly step days
// apart, anywhere in history. Date keys sort chronologically as strings.
func longestRun(set map[string]bool, step int) int {
	if len(set) == 0 {
		return 0
	}

	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	longest, run := 0, 0
	var prev time.Time
	for i, k := range keys {
		cur := calendar.MustParseDate(k)
		if i > 0 && calendar.DaysBetween(prev, cur) == step {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = cur
	}
	return longest
}
