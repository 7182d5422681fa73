package services

import (
	"context"
	"io"
	"time"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/export"
)

// ExportService serves full-data exports. Unlike the analytics paths it
// always includes archived habits: a backup that silently drops data is not
// a backup.
type ExportService struct {
	habitRepo domain.HabitRepository
	entryRepo domain.EntryRepository
	now       func() time.Time
}

func NewExportService(habitRepo domain.HabitRepository, entryRepo domain.EntryRepository, now func() time.Time) *ExportService {
	return &ExportService{
		habitRepo: habitRepo,
		entryRepo: entryRepo,
		now:       now,
	}
}

func (s *ExportService) loadAll(ctx context.Context, userID string) ([]*domain.Habit, []*domain.DailyEntry, error) {
	habits, err := s.habitRepo.ListByUserID(ctx, userID, true)
	if err != nil {
		return nil, nil, err
	}

	entries, err := s.entryRepo.ListByUserID(ctx, userID, "", "")
	if err != nil {
		return nil, nil, err
	}

	return habits, entries, nil
}

// Document builds the JSON backup of everything the user owns.
func (s *ExportService) Document(ctx context.Context, userID string) (*export.Document, error) {
	habits, entries, err := s.loadAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	return export.BuildDocument(habits, entries, s.now()), nil
}

// WriteHabitsCSV streams the user's habit list to w.
func (s *ExportService) WriteHabitsCSV(ctx context.Context, userID string, w io.Writer) error {
	habits, err := s.habitRepo.ListByUserID(ctx, userID, true)
	if err != nil {
		return err
	}
	return export.WriteHabitsCSV(w, habits)
}

// WriteEntriesCSV streams the user's entry history to w, one judged row per
// entry.
func (s *ExportService) WriteEntriesCSV(ctx context.Context, userID string, w io.Writer) error {
	habits, entries, err := s.loadAll(ctx, userID)
	if err != nil {
		return err
	}
	return export.WriteEntriesCSV(w, habits, entries)
}
