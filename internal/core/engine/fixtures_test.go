package engine

import (
	"time"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
)

// The fixture week is Monday 2025-03-10 through Sunday 2025-03-16; most
// tests observe it from Wednesday evening.

func day(s string) time.Time {
	return calendar.MustParseDate(s)
}

// at builds a wall-clock instant on the given date, UTC.
func at(date string, hour int) time.Time {
	return day(date).Add(time.Duration(hour) * time.Hour)
}

func numericHabit(id string, weeklyGoal float64, createdAt string) *domain.Habit {
	return &domain.Habit{
		ID:         id,
		UserID:     "u1",
		Name:       "Habit " + id,
		Type:       domain.HabitTypeNumeric,
		WeeklyGoal: weeklyGoal,
		Unit:       "units",
		CreatedAt:  day(createdAt),
		UpdatedAt:  day(createdAt),
	}
}

func binaryHabit(id string, createdAt string) *domain.Habit {
	h := numericHabit(id, 7, createdAt)
	h.Type = domain.HabitTypeBinary
	h.Unit = ""
	return h
}

func entry(habitID, date string, value float64) *domain.DailyEntry {
	return &domain.DailyEntry{
		ID:      domain.EntryID(habitID, date),
		HabitID: habitID,
		UserID:  "u1",
		Date:    date,
		Value:   value,
	}
}

// entries expands date keys into complete binary entries for the habit.
func entries(habitID string, dates ...string) []*domain.DailyEntry {
	out := make([]*domain.DailyEntry, 0, len(dates))
	for _, d := range dates {
		out = append(out, entry(habitID, d, 1))
	}
	return out
}
