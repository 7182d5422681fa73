package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
)

type PostgresEntryRepository struct {
	db *sqlx.DB
}

func NewPostgresEntryRepository(db *sqlx.DB) *PostgresEntryRepository {
	return &PostgresEntryRepository{db: db}
}

// Upsert inserts or overwrites the row for (habit_id, date). Last write
// wins on value and updated_at; created_at and a stored target snapshot
// survive unless the incoming entry carries its own snapshot. The persisted
// row state is written back into entry.
func (r *PostgresEntryRepository) Upsert(ctx context.Context, entry *domain.DailyEntry) error {
	query := `
		INSERT INTO habit_entries (
			id, habit_id, user_id, date, value, target_at_entry, created_at, updated_at
		) VALUES (
			:id, :habit_id, :user_id, :date, :value, :target_at_entry, :created_at, :updated_at
		)
		ON CONFLICT (habit_id, date) DO UPDATE SET
			value = EXCLUDED.value,
			target_at_entry = COALESCE(EXCLUDED.target_at_entry, habit_entries.target_at_entry),
			updated_at = EXCLUDED.updated_at
		RETURNING target_at_entry, created_at, updated_at`

	rows, err := r.db.NamedQueryContext(ctx, query, entry)
	if err != nil {
		// 23503: the referenced habit is gone.
		if pgErrCode(err) == "23503" {
			return domain.ErrHabitNotFound
		}
		return fmt.Errorf("upsert query failed: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&entry.TargetAtEntry, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			return fmt.Errorf("upsert scan error: %w", err)
		}
	}

	return rows.Err()
}

func (r *PostgresEntryRepository) GetByID(ctx context.Context, id string) (*domain.DailyEntry, error) {
	var entry domain.DailyEntry
	query := `SELECT * FROM habit_entries WHERE id = $1`

	err := r.db.GetContext(ctx, &entry, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *PostgresEntryRepository) GetByHabitAndDate(ctx context.Context, habitID, date string) (*domain.DailyEntry, error) {
	var entry domain.DailyEntry
	query := `SELECT * FROM habit_entries WHERE habit_id = $1 AND date = $2`

	err := r.db.GetContext(ctx, &entry, query, habitID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// ListByHabitID returns a habit's entries ordered by date. Date keys are
// ISO strings, so text comparison is date comparison; empty bounds fall
// away in the predicate.
func (r *PostgresEntryRepository) ListByHabitID(ctx context.Context, habitID string, from, to string) ([]*domain.DailyEntry, error) {
	entries := []*domain.DailyEntry{}

	query := `
		SELECT * FROM habit_entries
		WHERE habit_id = $1
		  AND ($2 = '' OR date >= $2)
		  AND ($3 = '' OR date <= $3)
		ORDER BY date ASC`

	err := r.db.SelectContext(ctx, &entries, query, habitID, from, to)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresEntryRepository) ListByUserID(ctx context.Context, userID string, from, to string) ([]*domain.DailyEntry, error) {
	entries := []*domain.DailyEntry{}

	query := `
		SELECT * FROM habit_entries
		WHERE user_id = $1
		  AND ($2 = '' OR date >= $2)
		  AND ($3 = '' OR date <= $3)
		ORDER BY habit_id ASC, date ASC`

	err := r.db.SelectContext(ctx, &entries, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresEntryRepository) DeleteByHabitID(ctx context.Context, habitID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM habit_entries WHERE habit_id = $1`, habitID)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}
	return nil
}
