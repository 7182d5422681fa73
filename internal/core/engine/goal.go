// Package engine implements the habit analytics calculators: goal
// resolution, weekly and overall statistics, daily and weekly streaks, live
// pacing, and the entry edit window. Every function is pure. Results depend
// only on the arguments, time enters exclusively through an explicit now,
// and nothing here touches storage or the wall clock, so identical inputs
// always produce identical outputs.
package engine

import (
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
)

// CompletionThreshold is the fraction of a goal that counts as reached. The
// same 80% applies to single days (daily streaks, perfect days) and to whole
// weeks (weekly streaks, overall streak).
const CompletionThreshold = 0.8

// dailyGoalOf is the habit's nominal daily goal with no snapshot applied:
// one completion for binary habits, a seventh of the weekly goal otherwise.
func dailyGoalOf(habit *domain.Habit) float64 {
	if habit.Type == domain.HabitTypeBinary {
		return 1
	}
	return habit.WeeklyGoal / 7
}

// EffectiveDailyGoal resolves the goal an entry is judged against. The
// snapshot taken when the entry was written wins; the habit's current daily
// goal is the fallback for rows that predate snapshots.
func EffectiveDailyGoal(entry *domain.DailyEntry, habit *domain.Habit) float64 {
	if entry != nil && entry.TargetAtEntry != nil {
		return *entry.TargetAtEntry
	}
	return dailyGoalOf(habit)
}

// IsEntryComplete reports whether the entry counts as a successful day.
// Binary habits need a logged value of at least 1. Numeric habits need 80%
// of the effective daily goal; with a zero goal any logged value counts, and
// nothing ever divides by the goal. A nil entry is never complete.
func IsEntryComplete(entry *domain.DailyEntry, habit *domain.Habit) bool {
	if entry == nil {
		return false
	}
	if habit.Type == domain.HabitTypeBinary {
		return entry.Value >= 1
	}
	return entry.Value >= EffectiveDailyGoal(entry, habit)*CompletionThreshold
}
