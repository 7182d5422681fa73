// Package export serializes a user's habits and entries into portable
// formats: a JSON backup document and flat CSV files. Everything here is
// pure; callers load the data and pick the destination writer.
package export

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/engine"
)

// Document is the JSON backup payload. Habits and entries keep their API
// wire fields so a backup round-trips through the same decoders.
type Document struct {
	ExportedAt time.Time            `json:"exportedAt"`
	Habits     []*domain.Habit      `json:"habits"`
	Entries    []*domain.DailyEntry `json:"entries"`
}

// sortedHabits orders habits by display order, then creation time. The input
// is copied: export must never reorder a caller's slice.
func sortedHabits(habits []*domain.Habit) []*domain.Habit {
	out := make([]*domain.Habit, len(habits))
	copy(out, habits)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// sortedEntries orders entries by habit, then date. Date keys sort as
// strings because they are zero-padded.
func sortedEntries(entries []*domain.DailyEntry) []*domain.DailyEntry {
	out := make([]*domain.DailyEntry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].HabitID != out[j].HabitID {
			return out[i].HabitID < out[j].HabitID
		}
		return out[i].Date < out[j].Date
	})
	return out
}

// BuildDocument assembles the JSON backup for one user's data as of
// exportedAt. Slices are always non-nil so empty collections serialize as
// [] rather than null.
func BuildDocument(habits []*domain.Habit, entries []*domain.DailyEntry, exportedAt time.Time) *Document {
	return &Document{
		ExportedAt: exportedAt.UTC(),
		Habits:     sortedHabits(habits),
		Entries:    sortedEntries(entries),
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteHabitsCSV streams the habit list as CSV, one row per habit in display
// order.
func WriteHabitsCSV(w io.Writer, habits []*domain.Habit) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "name", "type", "weekly_goal", "unit", "order", "archived", "created_at"}); err != nil {
		return err
	}
	for _, h := range sortedHabits(habits) {
		record := []string{
			h.ID,
			h.Name,
			h.Type,
			formatValue(h.WeeklyGoal),
			h.Unit,
			strconv.Itoa(h.Order),
			strconv.FormatBool(h.Archived),
			h.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteEntriesCSV streams the entry history as CSV, joined with its habits.
// daily_goal carries the effective goal each entry was judged against and
// completed carries the 80% verdict, so the file is faithful to the
// analytics, not just a raw dump. Entries whose habit is not in the list are
// skipped.
func WriteEntriesCSV(w io.Writer, habits []*domain.Habit, entries []*domain.DailyEntry) error {
	byID := make(map[string]*domain.Habit, len(habits))
	for _, h := range habits {
		byID[h.ID] = h
	}

	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"date", "habit_id", "habit_name", "type", "value", "unit", "daily_goal", "completed"}); err != nil {
		return err
	}
	for _, e := range sortedEntries(entries) {
		h, ok := byID[e.HabitID]
		if !ok {
			continue
		}
		record := []string{
			e.Date,
			e.HabitID,
			h.Name,
			h.Type,
			formatValue(e.Value),
			h.Unit,
			formatValue(engine.EffectiveDailyGoal(e, h)),
			strconv.FormatBool(engine.IsEntryComplete(e, h)),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
