package engine

import (
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
)

var statusRank = map[string]int{
	domain.StatusOnTrack: 0,
	domain.StatusWarning: 1,
	domain.StatusBehind:  2,
}

func worseStatus(a, b string) string {
	if statusRank[b] > statusRank[a] {
		return b
	}
	return a
}

// habitWeekStatus buckets one habit's pace for the week containing today.
// The margin for a warning is one day's worth of values: one completion for
// binary habits, one nominal daily goal for numeric ones. Anything further
// behind is behind.
func habitWeekStatus(habit *domain.Habit, total float64, weekStart, today time.Time) string {
	goal, active := proRatedGoal(habit, weekStart)
	if active == 0 || goal <= 0 {
		return domain.StatusOnTrack
	}

	_, passed, _ := activeDayCounts(habit, weekStart, today)
	expected := goal / float64(active) * float64(passed)
	diff := total - expected

	switch {
	case diff >= 0:
		return domain.StatusOnTrack
	case habit.Type == domain.HabitTypeBinary && diff >= -1:
		return domain.StatusWarning
	case habit.Type == domain.HabitTypeNumeric && diff >= -(habit.WeeklyGoal/7):
		return domain.StatusWarning
	default:
		return domain.StatusBehind
	}
}

// CalculateOverallStreak computes the cross-habit weekly-goal streak and the
// live pacing of the in-progress week, as seen at now.
//
// A week is complete when it has at least one applicable habit (existing,
// with a positive pro-rated goal) and every applicable habit reached 80% of
// its pro-rated goal. Each consecutive complete week before the current one
// contributes seven days. The in-progress week contributes its day-of-week
// count while every applicable habit is pacing on-track; a week that falls
// behind contributes nothing but never erases the completed weeks behind it.
func CalculateOverallStreak(habits []*domain.Habit, entriesByHabit map[string][]*domain.DailyEntry, now time.Time) (*domain.OverallStreak, error) {
	result := &domain.OverallStreak{WeeklyStatus: domain.StatusOnTrack}

	today := calendar.Today(now)
	thisWeek := calendar.WeekStart(today)

	var live []*domain.Habit
	var earliest time.Time
	totals := make(map[string]map[string]float64)

	for _, h := range habits {
		if h.Archived {
			continue
		}
		live = append(live, h)

		creation := calendar.DateOf(h.CreatedAt)
		if earliest.IsZero() || creation.Before(earliest) {
			earliest = creation
		}

		weeks := make(map[string]float64)
		for _, e := range entriesByHabit[h.ID] {
			if e.HabitID != h.ID {
				continue
			}
			d, err := calendar.ParseDate(e.Date)
			if err != nil {
				return nil, fmt.Errorf("overall streak: %w", err)
			}
			weeks[calendar.FormatDate(calendar.WeekStart(d))] += e.Value
		}
		totals[h.ID] = weeks
	}

	if len(live) == 0 {
		return result, nil
	}

	weekComplete := func(ws time.Time) bool {
		key := calendar.FormatDate(ws)
		applicable := 0
		for _, h := range live {
			goal, active := proRatedGoal(h, ws)
			if active == 0 || goal <= 0 {
				continue
			}
			applicable++
			if totals[h.ID][key] < goal*CompletionThreshold {
				return false
			}
		}
		return applicable > 0
	}

	thisKey := calendar.FormatDate(thisWeek)
	applicableNow := 0
	for _, h := range live {
		goal, active := proRatedGoal(h, thisWeek)
		if active == 0 || goal <= 0 {
			continue
		}
		applicableNow++
		result.WeeklyStatus = worseStatus(result.WeeklyStatus, habitWeekStatus(h, totals[h.ID][thisKey], thisWeek, today))
	}
	result.IsCurrentWeekOnTrack = applicableNow > 0 && result.WeeklyStatus == domain.StatusOnTrack

	days := 0
	for w := calendar.AddDays(thisWeek, -7); weekComplete(w); w = calendar.AddDays(w, -7) {
		days += 7
	}
	if result.IsCurrentWeekOnTrack {
		days += calendar.DayOfWeek(today)
	}
	result.CurrentStreak = days

	best, run := 0, 0
	for w := calendar.WeekStart(earliest); w.Before(thisWeek); w = calendar.AddDays(w, 7) {
		if weekComplete(w) {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	result.MaxStreak = best * 7
	if result.CurrentStreak > result.MaxStreak {
		result.MaxStreak = result.CurrentStreak
	}

	return result, nil
}
