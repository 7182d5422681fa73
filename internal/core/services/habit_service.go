// Package services orchestrates the use cases: habit CRUD, entry upserts,
// analytics queries and exports. Services own ownership checks and the edit
// window, load data through the repository ports, and delegate every
// computation to the engine. Time enters through an injected clock so the
// whole layer is testable at a fixed instant.
package services

import (
	"context"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
)

type HabitService struct {
	repo      domain.HabitRepository
	entryRepo domain.EntryRepository
}

func NewHabitService(repo domain.HabitRepository, entryRepo domain.EntryRepository) *HabitService {
	return &HabitService{
		repo:      repo,
		entryRepo: entryRepo,
	}
}

type CreateHabitInput struct {
	UserID     string
	Name       string
	Type       string
	WeeklyGoal float64
	Unit       string
}

// UpdateHabitInput carries a partial update: nil fields keep their current
// values.
type UpdateHabitInput struct {
	ID         string
	UserID     string
	Name       *string
	WeeklyGoal *float64
	Unit       *string
	Order      *int
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(input.UserID, input.Name, input.Type, input.Unit, input.WeeklyGoal)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

// owned loads a habit and checks it belongs to userID. Every habit-scoped
// operation goes through here.
func (s *HabitService) owned(ctx context.Context, id, userID string) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return habit, nil
}

func (s *HabitService) GetByID(ctx context.Context, id, userID string) (*domain.Habit, error) {
	return s.owned(ctx, id, userID)
}

func (s *HabitService) ListByUserID(ctx context.Context, userID string, includeArchived bool) ([]*domain.Habit, error) {
	return s.repo.ListByUserID(ctx, userID, includeArchived)
}

func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.owned(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	name := habit.Name
	if input.Name != nil {
		name = *input.Name
	}

	goal := habit.WeeklyGoal
	if input.WeeklyGoal != nil {
		goal = *input.WeeklyGoal
	}

	unit := habit.Unit
	if input.Unit != nil {
		unit = *input.Unit
	}

	if err := habit.Update(name, unit, goal); err != nil {
		return nil, err
	}
	if input.Order != nil {
		if err := habit.ChangePosition(*input.Order); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) Archive(ctx context.Context, id, userID string) (*domain.Habit, error) {
	habit, err := s.owned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	habit.Archive()

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) Restore(ctx context.Context, id, userID string) (*domain.Habit, error) {
	habit, err := s.owned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	habit.Restore()

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

// Delete permanently removes a habit and its full entry history. Archiving
// is the reversible path; this one is not.
func (s *HabitService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}

	if err := s.entryRepo.DeleteByHabitID(ctx, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
