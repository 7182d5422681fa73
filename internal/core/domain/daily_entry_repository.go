package domain

import (
	"context"
	"errors"
)

var (
	ErrEntryNotFound = errors.New("daily entry not found")
)

type EntryRepository interface {
	// Upsert inserts the entry or, when one already exists for the same
	// (habit, date), overwrites its value. Last write wins: updated_at is
	// the incoming server timestamp, created_at keeps the original row's
	// value, and a stored target snapshot is preserved unless the incoming
	// entry carries one. Implementations write the persisted timestamps and
	// snapshot back into the passed entry.
	Upsert(ctx context.Context, entry *DailyEntry) error

	// GetByID retrieves a single entry by its derived identifier.
	GetByID(ctx context.Context, id string) (*DailyEntry, error)

	// GetByHabitAndDate retrieves the entry for one habit on one date.
	GetByHabitAndDate(ctx context.Context, habitID, date string) (*DailyEntry, error)

	// ListByHabitID retrieves a habit's entries ordered by date, optionally
	// bounded by inclusive from/to date keys. Empty bounds mean the full
	// history, which the streak calculators require.
	ListByHabitID(ctx context.Context, habitID string, from, to string) ([]*DailyEntry, error)

	// ListByUserID retrieves all entries of a user's habits ordered by
	// habit then date, with the same optional bounds.
	ListByUserID(ctx context.Context, userID string, from, to string) ([]*DailyEntry, error)

	// DeleteByHabitID removes every entry of a habit. Used when a habit is
	// permanently deleted.
	DeleteByHabitID(ctx context.Context, habitID string) error
}
