package services_test

import (
	"context"
	"sort"
	"time"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/workers"
)

func ptr[T any](v T) *T {
	return &v
}

// clockAt freezes the service clock at a wall-clock hour of a fixture date.
func clockAt(date string, hour int) func() time.Time {
	t := calendar.MustParseDate(date).Add(time.Duration(hour) * time.Hour)
	return func() time.Time { return t }
}

type MockHabitRepo struct {
	store         map[string]*domain.Habit
	simulateError error
}

func NewMockHabitRepo() *MockHabitRepo {
	return &MockHabitRepo{store: make(map[string]*domain.Habit)}
}

func (m *MockHabitRepo) Create(ctx context.Context, habit *domain.Habit) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	for _, h := range m.store {
		if h.UserID == habit.UserID && h.Name == habit.Name {
			return domain.ErrHabitExists
		}
	}
	clone := *habit
	m.store[habit.ID] = &clone
	return nil
}

func (m *MockHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	h, ok := m.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	clone := *h
	return &clone, nil
}

func (m *MockHabitRepo) ListByUserID(ctx context.Context, userID string, includeArchived bool) ([]*domain.Habit, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	var list []*domain.Habit
	for _, h := range m.store {
		if h.UserID != userID {
			continue
		}
		if h.Archived && !includeArchived {
			continue
		}
		clone := *h
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Order != list[j].Order {
			return list[i].Order < list[j].Order
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func (m *MockHabitRepo) Update(ctx context.Context, habit *domain.Habit) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, ok := m.store[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}
	clone := *habit
	m.store[habit.ID] = &clone
	return nil
}

func (m *MockHabitRepo) Delete(ctx context.Context, id string) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, ok := m.store[id]; !ok {
		return domain.ErrHabitNotFound
	}
	delete(m.store, id)
	return nil
}

type MockEntryRepo struct {
	store         map[string]*domain.DailyEntry
	simulateError error
	listCalls     int
}

func NewMockEntryRepo() *MockEntryRepo {
	return &MockEntryRepo{store: make(map[string]*domain.DailyEntry)}
}

func (m *MockEntryRepo) Upsert(ctx context.Context, entry *domain.DailyEntry) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if existing, ok := m.store[entry.ID]; ok {
		entry.CreatedAt = existing.CreatedAt
		if entry.TargetAtEntry == nil {
			entry.TargetAtEntry = existing.TargetAtEntry
		}
	}
	clone := *entry
	m.store[entry.ID] = &clone
	return nil
}

func (m *MockEntryRepo) GetByID(ctx context.Context, id string) (*domain.DailyEntry, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	e, ok := m.store[id]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	clone := *e
	return &clone, nil
}

func (m *MockEntryRepo) GetByHabitAndDate(ctx context.Context, habitID, date string) (*domain.DailyEntry, error) {
	return m.GetByID(ctx, domain.EntryID(habitID, date))
}

func inRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

func (m *MockEntryRepo) ListByHabitID(ctx context.Context, habitID string, from, to string) ([]*domain.DailyEntry, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	m.listCalls++
	var list []*domain.DailyEntry
	for _, e := range m.store {
		if e.HabitID == habitID && inRange(e.Date, from, to) {
			clone := *e
			list = append(list, &clone)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date < list[j].Date })
	return list, nil
}

func (m *MockEntryRepo) ListByUserID(ctx context.Context, userID string, from, to string) ([]*domain.DailyEntry, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	m.listCalls++
	var list []*domain.DailyEntry
	for _, e := range m.store {
		if e.UserID == userID && inRange(e.Date, from, to) {
			clone := *e
			list = append(list, &clone)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].HabitID != list[j].HabitID {
			return list[i].HabitID < list[j].HabitID
		}
		return list[i].Date < list[j].Date
	})
	return list, nil
}

func (m *MockEntryRepo) DeleteByHabitID(ctx context.Context, habitID string) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	for id, e := range m.store {
		if e.HabitID == habitID {
			delete(m.store, id)
		}
	}
	return nil
}

type MockStreakCache struct {
	store  map[string]*domain.StreakData
	getErr error
	setErr error
	sets   int
}

func NewMockStreakCache() *MockStreakCache {
	return &MockStreakCache{store: make(map[string]*domain.StreakData)}
}

func (m *MockStreakCache) Get(ctx context.Context, habitID, dateKey string) (*domain.StreakData, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.store[habitID+":"+dateKey], nil
}

func (m *MockStreakCache) Set(ctx context.Context, habitID, dateKey string, data *domain.StreakData) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.store[habitID+":"+dateKey] = data
	return nil
}

// newTestWorker builds a real worker over the mocks. Tests never start it:
// enqueued jobs just sit in the buffer.
func newTestWorker(habits *MockHabitRepo, entries *MockEntryRepo, cache *MockStreakCache) *workers.StreakWorker {
	return workers.NewStreakWorker(habits, entries, cache, clockAt("2025-03-12", 20))
}
