package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/calendar"
)

var (
	ErrInvalidEntry  = errors.New("invalid daily entry data")
	ErrEntryLocked   = errors.New("entry date is outside the editable window")
	ErrEntryInFuture = errors.New("cannot log entries for future dates")
)

// EntryID derives the canonical entry identifier. One entry per habit per
// calendar date, so the key is the identity.
func EntryID(habitID, date string) string {
	return habitID + "_" + date
}

// DailyEntry is one habit's logged value for one calendar date. Date is a
// local YYYY-MM-DD key. TargetAtEntry snapshots the daily goal in force when
// the entry was first written; it survives later value updates, so raising a
// goal never retroactively breaks past completions. Nil on rows written
// before snapshots existed.
type DailyEntry struct {
	ID            string    `json:"id" db:"id"`
	HabitID       string    `json:"habitId" db:"habit_id"`
	UserID        string    `json:"userId" db:"user_id"`
	Date          string    `json:"date" db:"date"`
	Value         float64   `json:"value" db:"value"`
	TargetAtEntry *float64  `json:"targetAtEntry,omitempty" db:"target_at_entry"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

func NewDailyEntry(habitID, userID, date string, value float64, targetAtEntry *float64) *DailyEntry {
	now := time.Now().UTC()

	return &DailyEntry{
		ID:            EntryID(habitID, date),
		HabitID:       habitID,
		UserID:        userID,
		Date:          date,
		Value:         value,
		TargetAtEntry: targetAtEntry,

		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (e *DailyEntry) Validate() error {
	if strings.TrimSpace(e.HabitID) == "" {
		return fmt.Errorf("%w: habit id is required", ErrInvalidEntry)
	}
	if strings.TrimSpace(e.UserID) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidEntry)
	}
	if e.Value < 0 {
		return fmt.Errorf("%w: value cannot be negative", ErrInvalidEntry)
	}
	if e.TargetAtEntry != nil && *e.TargetAtEntry < 0 {
		return fmt.Errorf("%w: target snapshot cannot be negative", ErrInvalidEntry)
	}
	if _, err := calendar.ParseDate(e.Date); err != nil {
		return err
	}
	if e.ID != EntryID(e.HabitID, e.Date) {
		return fmt.Errorf("%w: id must be derived from habit id and date", ErrInvalidEntry)
	}
	return nil
}
