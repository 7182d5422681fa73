package domain

import "context"

// Pacing buckets for the in-progress week. OnTrack means at or ahead of the
// pro-rated pace, Warning means within one day's worth of values behind,
// Behind means more than that.
const (
	StatusOnTrack = "on-track"
	StatusWarning = "warning"
	StatusBehind  = "behind"
)

// WeeklyStats is one habit's progress over one ISO week. Goal is pro-rated
// to the days the habit existed during that week. Streak carries the habit's
// current daily streak so a weekly dashboard renders from a single payload.
type WeeklyStats struct {
	WeekStart            string  `json:"weekStart"`
	HabitID              string  `json:"habitId"`
	Total                float64 `json:"total"`
	Goal                 float64 `json:"goal"`
	Remaining            float64 `json:"remaining"`
	AvgNeededPerDay      float64 `json:"avgNeededPerDay"`
	IsOnTrack            bool    `json:"isOnTrack"`
	CompletionPercentage int     `json:"completionPercentage"`
	Streak               int     `json:"streak"`
}

// HabitPerformance identifies a habit inside an aggregate payload.
type HabitPerformance struct {
	HabitID              string `json:"habitId"`
	Name                 string `json:"name"`
	CompletionPercentage int    `json:"completionPercentage"`
}

// OverallStats aggregates a week across all non-archived habits. Habits with
// a zero pro-rated goal (goal zero, or created after the week) never count
// toward the ratios. Best and needs-attention pointers are nil when no habit
// qualifies.
type OverallStats struct {
	WeekStart                   string            `json:"weekStart"`
	TotalHabits                 int               `json:"totalHabits"`
	HabitsOnTrack               int               `json:"habitsOnTrack"`
	OverallCompletionPercentage int               `json:"overallCompletionPercentage"`
	BestPerformingHabit         *HabitPerformance `json:"bestPerformingHabit"`
	NeedsAttentionHabit         *HabitPerformance `json:"needsAttentionHabit"`
	WeeklyPerfectDays           int               `json:"weeklyPerfectDays"`
	AllHabitsWeeklyStreak       int               `json:"allHabitsWeeklyStreak"`
}

// StreakData is one habit's streak state. Daily streaks count consecutive
// successful days; weekly streaks count consecutive weeks that reached 80%
// of the pro-rated goal. LastActiveDate is the latest successful date, empty
// when the habit has never been completed.
type StreakData struct {
	HabitID             string `json:"habitId"`
	CurrentDailyStreak  int    `json:"currentDailyStreak"`
	LongestDailyStreak  int    `json:"longestDailyStreak"`
	CurrentWeeklyStreak int    `json:"currentWeeklyStreak"`
	LongestWeeklyStreak int    `json:"longestWeeklyStreak"`
	LastActiveDate      string `json:"lastActiveDate"`
}

// OverallStreak is the cross-habit weekly-goal streak, measured in days:
// seven per completed week plus the current week's day count while it stays
// on track.
type OverallStreak struct {
	CurrentStreak        int    `json:"currentStreak"`
	MaxStreak            int    `json:"maxStreak"`
	IsCurrentWeekOnTrack bool   `json:"isCurrentWeekOnTrack"`
	WeeklyStatus         string `json:"weeklyStatus"`
}

// StreakCache memoizes computed streaks. Keys include the calendar date the
// computation was valid for, so stale entries die at midnight without any
// invalidation traffic. A miss is (nil, nil); errors are reserved for the
// backend misbehaving, and callers fall back to computing.
type StreakCache interface {
	Get(ctx context.Context, habitID, dateKey string) (*StreakData, error)
	Set(ctx context.Context, habitID, dateKey string, data *StreakData) error
}
