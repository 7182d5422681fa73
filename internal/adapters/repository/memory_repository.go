package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
)

// The in-memory repositories back tests and local runs without Postgres.
// They store and return copies, so callers mutating a domain object never
// reach into the store behind the repository's back.

func cloneHabit(h *domain.Habit) *domain.Habit {
	c := *h
	return &c
}

func cloneEntry(e *domain.DailyEntry) *domain.DailyEntry {
	c := *e
	if e.TargetAtEntry != nil {
		v := *e.TargetAtEntry
		c.TargetAtEntry = &v
	}
	return &c
}

type InMemoryHabitRepository struct {
	store map[string]*domain.Habit

	mu sync.RWMutex
}

func NewInMemoryHabitRepository() *InMemoryHabitRepository {
	return &InMemoryHabitRepository{
		store: make(map[string]*domain.Habit),
	}
}

func (r *InMemoryHabitRepository) nameTaken(h *domain.Habit) bool {
	for _, existing := range r.store {
		if existing.ID != h.ID &&
			existing.UserID == h.UserID &&
			!existing.Archived &&
			existing.Name == h.Name {
			return true
		}
	}
	return false
}

func (r *InMemoryHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !habit.Archived && r.nameTaken(habit) {
		return domain.ErrHabitExists
	}

	r.store[habit.ID] = cloneHabit(habit)
	return nil
}

func (r *InMemoryHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habit, ok := r.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	return cloneHabit(habit), nil
}

func (r *InMemoryHabitRepository) ListByUserID(ctx context.Context, userID string, includeArchived bool) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var habits []*domain.Habit
	for _, h := range r.store {
		if h.UserID != userID {
			continue
		}
		if h.Archived && !includeArchived {
			continue
		}
		habits = append(habits, cloneHabit(h))
	}

	sort.Slice(habits, func(i, j int) bool {
		if habits[i].Order != habits[j].Order {
			return habits[i].Order < habits[j].Order
		}
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})

	return habits, nil
}

func (r *InMemoryHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}
	if !habit.Archived && r.nameTaken(habit) {
		return domain.ErrHabitExists
	}

	r.store[habit.ID] = cloneHabit(habit)
	return nil
}

func (r *InMemoryHabitRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrHabitNotFound
	}

	delete(r.store, id)
	return nil
}

type InMemoryEntryRepository struct {
	store map[string]*domain.DailyEntry

	mu sync.RWMutex
}

func NewInMemoryEntryRepository() *InMemoryEntryRepository {
	return &InMemoryEntryRepository{
		store: make(map[string]*domain.DailyEntry),
	}
}

func (r *InMemoryEntryRepository) Upsert(ctx context.Context, entry *domain.DailyEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.store[entry.ID]; ok {
		entry.CreatedAt = existing.CreatedAt
		if entry.TargetAtEntry == nil {
			entry.TargetAtEntry = existing.TargetAtEntry
		}
	}

	r.store[entry.ID] = cloneEntry(entry)
	return nil
}

func (r *InMemoryEntryRepository) GetByID(ctx context.Context, id string) (*domain.DailyEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.store[id]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	return cloneEntry(entry), nil
}

func (r *InMemoryEntryRepository) GetByHabitAndDate(ctx context.Context, habitID, date string) (*domain.DailyEntry, error) {
	return r.GetByID(ctx, domain.EntryID(habitID, date))
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

func (r *InMemoryEntryRepository) ListByHabitID(ctx context.Context, habitID string, from, to string) ([]*domain.DailyEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []*domain.DailyEntry{}
	for _, e := range r.store {
		if e.HabitID == habitID && inRange(e.Date, from, to) {
			entries = append(entries, cloneEntry(e))
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})

	return entries, nil
}

func (r *InMemoryEntryRepository) ListByUserID(ctx context.Context, userID string, from, to string) ([]*domain.DailyEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []*domain.DailyEntry{}
	for _, e := range r.store {
		if e.UserID == userID && inRange(e.Date, from, to) {
			entries = append(entries, cloneEntry(e))
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].HabitID != entries[j].HabitID {
			return entries[i].HabitID < entries[j].HabitID
		}
		return entries[i].Date < entries[j].Date
	})

	return entries, nil
}

func (r *InMemoryEntryRepository) DeleteByHabitID(ctx context.Context, habitID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.store {
		if e.HabitID == habitID {
			delete(r.store, id)
		}
	}
	return nil
}
