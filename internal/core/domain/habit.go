package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty     = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong   = errors.New("habit name is too long (max 255 chars)")
	ErrHabitInvalidUserID = errors.New("invalid user id")
	ErrInvalidHabitType   = errors.New("invalid habit type (must be binary or numeric)")
	ErrInvalidWeeklyGoal  = errors.New("weekly goal cannot be negative")
	ErrHabitArchived      = errors.New("cannot update an archived habit")
)

const (
	HabitTypeBinary  = "binary"
	HabitTypeNumeric = "numeric"
	MaxNameLen       = 255
)

// Habit is a tracked activity. WeeklyGoal is the target amount per week: for
// binary habits it counts completions (typically 7), for numeric habits it is
// expressed in Unit. CreatedAt drives goal pro-ration, so it is never
// rewritten after creation. Order is display ordering only and has no effect
// on any computation.
type Habit struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"userId" db:"user_id"`
	Name       string    `json:"name" db:"name"`
	Type       string    `json:"type" db:"type"`
	WeeklyGoal float64   `json:"weeklyGoal" db:"weekly_goal"`
	Unit       string    `json:"unit" db:"unit"`
	Order      int       `json:"order" db:"display_order"`
	Archived   bool      `json:"archived" db:"archived"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

func validateHabit(name, hType string, weeklyGoal float64) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrHabitNameEmpty
	}
	if len(trimmed) > MaxNameLen {
		return "", ErrHabitNameTooLong
	}

	switch hType {
	case HabitTypeBinary, HabitTypeNumeric:
	default:
		return "", ErrInvalidHabitType
	}

	if weeklyGoal < 0 {
		return "", ErrInvalidWeeklyGoal
	}

	return trimmed, nil
}

func NewHabit(userID, name, hType, unit string, weeklyGoal float64) (*Habit, error) {
	if userID == "" {
		return nil, ErrHabitInvalidUserID
	}

	trimmed, err := validateHabit(name, hType, weeklyGoal)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Habit{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       trimmed,
		Type:       hType,
		WeeklyGoal: weeklyGoal,
		Unit:       strings.TrimSpace(unit),
		Order:      0,
		Archived:   false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Update rewrites the mutable fields. Type is fixed at creation: entries
// carry goal snapshots, and flipping a habit between binary and numeric
// would make the historical values meaningless.
func (h *Habit) Update(name, unit string, weeklyGoal float64) error {
	if h.Archived {
		return ErrHabitArchived
	}

	trimmed, err := validateHabit(name, h.Type, weeklyGoal)
	if err != nil {
		return err
	}

	h.Name = trimmed
	h.Unit = strings.TrimSpace(unit)
	h.WeeklyGoal = weeklyGoal
	h.UpdatedAt = time.Now().UTC()

	return nil
}

func (h *Habit) ChangePosition(newOrder int) error {
	if h.Archived {
		return ErrHabitArchived
	}

	h.Order = newOrder
	h.UpdatedAt = time.Now().UTC()
	return nil
}

// Archive removes the habit from every computation while keeping its entries
// in storage and in exports.
func (h *Habit) Archive() {
	if h.Archived {
		return
	}
	h.Archived = true
	h.UpdatedAt = time.Now().UTC()
}

func (h *Habit) Restore() {
	if !h.Archived {
		return
	}
	h.Archived = false
	h.UpdatedAt = time.Now().UTC()
}
