package services_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/services"
)

func TestExportService(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*MockHabitRepo, *MockEntryRepo, *services.ExportService) {
		habits := NewMockHabitRepo()
		entries := NewMockEntryRepo()
		live := habitFixture("live", "user-1", domain.HabitTypeNumeric, 70)
		live.Unit = "ml"
		habits.store["live"] = live
		retired := habitFixture("retired", "user-1", domain.HabitTypeBinary, 7)
		retired.Archived = true
		habits.store["retired"] = retired
		habits.store["foreign"] = habitFixture("foreign", "user-2", domain.HabitTypeBinary, 7)
		require.NoError(t, entries.Upsert(ctx, domain.NewDailyEntry("live", "user-1", "2025-03-11", 12, nil)))
		require.NoError(t, entries.Upsert(ctx, domain.NewDailyEntry("live", "user-1", "2025-03-10", 10, nil)))
		require.NoError(t, entries.Upsert(ctx, domain.NewDailyEntry("foreign", "user-2", "2025-03-10", 1, nil)))
		svc := services.NewExportService(habits, entries, clockAt("2025-03-12", 20))
		return habits, entries, svc
	}

	t.Run("Success: document keeps archived habits and only the owner's data", func(t *testing.T) {
		_, _, svc := setup(t)

		doc, err := svc.Document(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 12, 20, 0, 0, 0, time.UTC), doc.ExportedAt)
		require.Len(t, doc.Habits, 2, "archived habits belong in a backup")
		require.Len(t, doc.Entries, 2)
		assert.Equal(t, "2025-03-10", doc.Entries[0].Date)
		assert.Equal(t, "2025-03-11", doc.Entries[1].Date)
		for _, h := range doc.Habits {
			assert.Equal(t, "user-1", h.UserID)
		}
	})

	t.Run("Success: habits CSV includes the archived row", func(t *testing.T) {
		_, _, svc := setup(t)
		var buf bytes.Buffer

		require.NoError(t, svc.WriteHabitsCSV(ctx, "user-1", &buf))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "id,name,type,weekly_goal,unit,order,archived,created_at", lines[0])
		assert.Contains(t, buf.String(), "retired")
		assert.NotContains(t, buf.String(), "foreign")
	})

	t.Run("Success: entries CSV joins habit metadata", func(t *testing.T) {
		_, _, svc := setup(t)
		var buf bytes.Buffer

		require.NoError(t, svc.WriteEntriesCSV(ctx, "user-1", &buf))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "date,habit_id,habit_name,type,value,unit,daily_goal,completed", lines[0])
		assert.Equal(t, "2025-03-10,live,Habit live,numeric,10,ml,10,true", lines[1])
		assert.Equal(t, "2025-03-11,live,Habit live,numeric,12,ml,10,true", lines[2])
	})

	t.Run("Fail: habit repository trouble surfaces", func(t *testing.T) {
		habits, _, svc := setup(t)
		habits.simulateError = errors.New("db down")

		_, err := svc.Document(ctx, "user-1")

		assert.Error(t, err)
	})

	t.Run("Fail: entry repository trouble surfaces", func(t *testing.T) {
		_, entries, svc := setup(t)
		entries.simulateError = errors.New("db down")

		err := svc.WriteEntriesCSV(ctx, "user-1", &bytes.Buffer{})

		assert.Error(t, err)
	})
}
