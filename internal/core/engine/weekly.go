package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// activeDayCounts splits the week at weekStart into the days the habit
// existed (creation date or later), how many of those have passed, and how
// many remain. Today belongs to both passed and remaining: it already counts
// toward expected pace and it is still available to act on.
func activeDayCounts(habit *domain.Habit, weekStart, today time.Time) (active, passed, remaining int) {
	creation := calendar.DateOf(habit.CreatedAt)
	for i := 0; i < 7; i++ {
		d := calendar.AddDays(weekStart, i)
		if d.Before(creation) {
			continue
		}
		active++
		if !d.After(today) {
			passed++
		}
		if !d.Before(today) {
			remaining++
		}
	}
	return active, passed, remaining
}

// proRatedGoal scales the weekly goal down to the days the habit existed
// during the week, so a habit created on Thursday is not judged against a
// full week. With no active days the full weekly goal is returned unscaled.
func proRatedGoal(habit *domain.Habit, weekStart time.Time) (goal float64, activeDays int) {
	active, _, _ := activeDayCounts(habit, weekStart, calendar.WeekEnd(weekStart))
	if active == 0 {
		return habit.WeeklyGoal, 0
	}
	return habit.WeeklyGoal / 7 * float64(active), active
}

// weekEntries narrows entries to the habit and the seven days starting at
// weekStart. Every date it touches is validated; a malformed one aborts the
// whole computation rather than silently skewing totals.
func weekEntries(habit *domain.Habit, entries []*domain.DailyEntry, weekStart time.Time) ([]*domain.DailyEntry, error) {
	weekEnd := calendar.AddDays(weekStart, 6)

	var out []*domain.DailyEntry
	for _, e := range entries {
		if e.HabitID != habit.ID {
			continue
		}
		d, err := calendar.ParseDate(e.Date)
		if err != nil {
			return nil, err
		}
		if d.Before(weekStart) || d.After(weekEnd) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// CalculateWeeklyStats computes one habit's progress for the week containing
// weekStart, as seen at now. Entries outside that week or belonging to other
// habits are ignored, so callers may pass a broader slice. The Streak field
// is left zero: the current daily streak needs the full history and is
// filled in by the caller from CalculateHabitStreak.
//
// A weekly goal of zero zeroes every derived number and never divides.
func CalculateWeeklyStats(habit *domain.Habit, entries []*domain.DailyEntry, weekStart, now time.Time) (*domain.WeeklyStats, error) {
	ws := calendar.WeekStart(weekStart)
	today := calendar.Today(now)

	inWeek, err := weekEntries(habit, entries, ws)
	if err != nil {
		return nil, fmt.Errorf("weekly stats for habit %s: %w", habit.ID, err)
	}

	total := 0.0
	for _, e := range inWeek {
		total += e.Value
	}

	active, passed, remainingDays := activeDayCounts(habit, ws, today)
	goal, _ := proRatedGoal(habit, ws)

	remaining := math.Max(0, goal-total)

	avgNeeded := 0.0
	if remainingDays > 0 {
		avgNeeded = remaining / float64(remainingDays)
	}

	expected := 0.0
	if active > 0 {
		expected = goal / float64(active) * float64(passed)
	}
	onTrack := total >= expected || total >= goal

	pct := 0
	if goal > 0 {
		pct = int(math.Round(total / goal * 100))
		if pct > 100 {
			pct = 100
		}
	}

	return &domain.WeeklyStats{
		WeekStart:            calendar.FormatDate(ws),
		HabitID:              habit.ID,
		Total:                total,
		Goal:                 round2(goal),
		Remaining:            round2(remaining),
		AvgNeededPerDay:      round2(avgNeeded),
		IsOnTrack:            onTrack,
		CompletionPercentage: pct,
	}, nil
}
