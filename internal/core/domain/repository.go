package domain

import (
	"context"
	"errors"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrHabitExists   = errors.New("a habit with this name already exists")

	// ErrUnauthorized reports an access to a resource owned by another user.
	// Services return it on any ownership mismatch; handlers map it to 403.
	ErrUnauthorized = errors.New("resource does not belong to the user")
)

type HabitRepository interface {
	// Create persists a new habit definition.
	Create(ctx context.Context, habit *Habit) error

	// GetByID retrieves a habit by its unique identifier.
	GetByID(ctx context.Context, id string) (*Habit, error)

	// ListByUserID retrieves a user's habits ordered by display order then
	// creation time. Archived habits are included only when requested; the
	// analytics paths never want them, the export path always does.
	ListByUserID(ctx context.Context, userID string, includeArchived bool) ([]*Habit, error)

	// Update modifies the state of an existing habit.
	Update(ctx context.Context, habit *Habit) error

	// Delete permanently removes a habit and its entries.
	Delete(ctx context.Context, id string) error
}
