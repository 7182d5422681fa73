package services

import (
	"context"
	"errors"
	"time"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/engine"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/workers"
)

type EntryService struct {
	repo      domain.EntryRepository
	habitRepo domain.HabitRepository
	worker    *workers.StreakWorker
	now       func() time.Time
}

func NewEntryService(repo domain.EntryRepository, habitRepo domain.HabitRepository, worker *workers.StreakWorker, now func() time.Time) *EntryService {
	return &EntryService{
		repo:      repo,
		habitRepo: habitRepo,
		worker:    worker,
		now:       now,
	}
}

// UpsertEntryInput writes one habit's value for one date. TargetAtEntry is
// normally left nil and resolved by the service; a non-nil value force-sets
// the snapshot, which backup imports use to restore history faithfully.
type UpsertEntryInput struct {
	HabitID       string
	UserID        string
	Date          string
	Value         float64
	TargetAtEntry *float64
}

// editWindowError maps a write date to the sentinel explaining why it cannot
// be edited, or nil while the window is open. Date keys compare as strings
// in chronological order, which is what separates future from locked.
func editWindowError(date string, now time.Time) error {
	editable, err := engine.IsDateEditable(date, now)
	if err != nil || editable {
		return err
	}
	if date > calendar.FormatDate(calendar.Today(now)) {
		return domain.ErrEntryInFuture
	}
	return domain.ErrEntryLocked
}

// Upsert writes the value for (habit, date), creating or overwriting as
// needed. Last write wins. On create the entry snapshots the habit's daily
// goal in force today; on overwrite the original snapshot is preserved, so
// later goal changes never rejudge the past.
func (s *EntryService) Upsert(ctx context.Context, input UpsertEntryInput) (*domain.DailyEntry, error) {
	habit, err := s.habitRepo.GetByID(ctx, input.HabitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != input.UserID {
		return nil, domain.ErrUnauthorized
	}
	if habit.Archived {
		return nil, domain.ErrHabitArchived
	}

	now := s.now()
	if err := editWindowError(input.Date, now); err != nil {
		return nil, err
	}

	snapshot := input.TargetAtEntry
	existing, err := s.repo.GetByHabitAndDate(ctx, input.HabitID, input.Date)
	switch {
	case errors.Is(err, domain.ErrEntryNotFound):
		if snapshot == nil {
			goal := engine.EffectiveDailyGoal(nil, habit)
			snapshot = &goal
		}
	case err != nil:
		return nil, err
	default:
		if snapshot == nil {
			snapshot = existing.TargetAtEntry
		}
	}

	entry := domain.NewDailyEntry(input.HabitID, input.UserID, input.Date, input.Value, snapshot)
	entry.CreatedAt = now.UTC()
	entry.UpdatedAt = now.UTC()

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	s.worker.Enqueue(workers.StreakJob{HabitID: input.HabitID, UserID: input.UserID})

	return entry, nil
}

func (s *EntryService) Get(ctx context.Context, id, userID string) (*domain.DailyEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return entry, nil
}

// validBounds rejects malformed range bounds early. Empty means unbounded.
func validBounds(bounds ...string) error {
	for _, b := range bounds {
		if b == "" {
			continue
		}
		if _, err := calendar.ParseDate(b); err != nil {
			return err
		}
	}
	return nil
}

func (s *EntryService) ListByHabit(ctx context.Context, habitID, userID, from, to string) ([]*domain.DailyEntry, error) {
	if err := validBounds(from, to); err != nil {
		return nil, err
	}

	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, domain.ErrUnauthorized
	}

	return s.repo.ListByHabitID(ctx, habitID, from, to)
}

func (s *EntryService) ListByUser(ctx context.Context, userID, from, to string) ([]*domain.DailyEntry, error) {
	if err := validBounds(from, to); err != nil {
		return nil, err
	}
	return s.repo.ListByUserID(ctx, userID, from, to)
}
