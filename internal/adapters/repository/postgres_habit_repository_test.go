package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// The integration tests run against a throwaway database and bootstrap
// their own schema. Without a reachable Postgres they skip.
func setupTestDB(t *testing.T) *sqlx.DB {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getenv("DB_USER", "habits_user"),
		getenv("DB_PASSWORD", "secret"),
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		getenv("DB_NAME", "habits_db"),
	)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Skipf("Skipping integration tests: database connection failed: %v", err)
	}

	ensureSchema(t, db)
	return db
}

const testSchema = `
CREATE TABLE IF NOT EXISTS habits (
    id            TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    name          TEXT NOT NULL,
    type          TEXT NOT NULL,
    weekly_goal   DOUBLE PRECISION NOT NULL,
    unit          TEXT NOT NULL DEFAULT '',
    display_order INT NOT NULL DEFAULT 0,
    archived      BOOLEAN NOT NULL DEFAULT FALSE,
    created_at    TIMESTAMPTZ NOT NULL,
    updated_at    TIMESTAMPTZ NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS habits_user_live_name
    ON habits (user_id, name) WHERE NOT archived;

CREATE TABLE IF NOT EXISTS habit_entries (
    id              TEXT PRIMARY KEY,
    habit_id        TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
    user_id         TEXT NOT NULL,
    date            TEXT NOT NULL,
    value           DOUBLE PRECISION NOT NULL,
    target_at_entry DOUBLE PRECISION,
    created_at      TIMESTAMPTZ NOT NULL,
    updated_at      TIMESTAMPTZ NOT NULL,
    UNIQUE (habit_id, date)
);`

func ensureSchema(t *testing.T, db *sqlx.DB) {
	_, err := db.Exec(testSchema)
	require.NoError(t, err, "Failed to bootstrap test schema")
}

func cleanup(t *testing.T, db *sqlx.DB) {
	_, err := db.Exec("TRUNCATE TABLE habit_entries, habits CASCADE")
	require.NoError(t, err, "Failed to clean up database")
}

func TestPostgresHabitRepository_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cleanup(t, db)
	defer cleanup(t, db)

	repo := NewPostgresHabitRepository(db)
	ctx := context.Background()
	userID := "pg-test-user-1"

	habit, err := domain.NewHabit(userID, "Hydration", domain.HabitTypeNumeric, "ml", 14000)
	require.NoError(t, err)

	t.Run("Create and read back", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, habit))

		got, err := repo.GetByID(ctx, habit.ID)
		require.NoError(t, err)

		assert.Equal(t, habit.ID, got.ID)
		assert.Equal(t, userID, got.UserID)
		assert.Equal(t, "Hydration", got.Name)
		assert.Equal(t, domain.HabitTypeNumeric, got.Type)
		assert.Equal(t, 14000.0, got.WeeklyGoal)
		assert.Equal(t, "ml", got.Unit)
		assert.False(t, got.Archived)
		assert.WithinDuration(t, habit.CreatedAt, got.CreatedAt, time.Millisecond)
	})

	t.Run("Fail: duplicate live name", func(t *testing.T) {
		dup, err := domain.NewHabit(userID, "Hydration", domain.HabitTypeBinary, "", 7)
		require.NoError(t, err)

		err = repo.Create(ctx, dup)
		assert.ErrorIs(t, err, domain.ErrHabitExists)
	})

	t.Run("List hides archived unless asked", func(t *testing.T) {
		second, err := domain.NewHabit(userID, "Reading", domain.HabitTypeBinary, "", 7)
		require.NoError(t, err)
		second.Order = 5
		require.NoError(t, repo.Create(ctx, second))
		second.Archive()
		require.NoError(t, repo.Update(ctx, second))

		live, err := repo.ListByUserID(ctx, userID, false)
		require.NoError(t, err)
		require.Len(t, live, 1)
		assert.Equal(t, habit.ID, live[0].ID)

		all, err := repo.ListByUserID(ctx, userID, true)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("Archiving a name frees it for reuse", func(t *testing.T) {
		reuse, err := domain.NewHabit(userID, "Reading", domain.HabitTypeBinary, "", 7)
		require.NoError(t, err)

		assert.NoError(t, repo.Create(ctx, reuse))
	})

	t.Run("Update persists field changes", func(t *testing.T) {
		require.NoError(t, habit.Update("Hydration", "ml", 17500))
		require.NoError(t, habit.ChangePosition(3))
		require.NoError(t, repo.Update(ctx, habit))

		got, err := repo.GetByID(ctx, habit.ID)
		require.NoError(t, err)
		assert.Equal(t, 17500.0, got.WeeklyGoal)
		assert.Equal(t, 3, got.Order)
	})

	t.Run("Fail: update of a missing habit", func(t *testing.T) {
		ghost, err := domain.NewHabit(userID, "Ghost", domain.HabitTypeBinary, "", 7)
		require.NoError(t, err)

		err = repo.Update(ctx, ghost)
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Delete removes the row", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, habit.ID))

		_, err := repo.GetByID(ctx, habit.ID)
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, habit.ID), domain.ErrHabitNotFound)
	})
}
