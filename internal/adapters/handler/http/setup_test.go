package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/kanso-habit-engine/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/services"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/workers"
)

// The handler tests run the full stack below the HTTP layer: real services
// and engine code over in-memory adapters, with the clock frozen at
// Wednesday 2025-03-12 20:00 UTC.
func testClock() time.Time {
	return time.Date(2025, 3, 12, 20, 0, 0, 0, time.UTC)
}

type testAPI struct {
	router    *gin.Engine
	habitRepo *repository.InMemoryHabitRepository
	entryRepo *repository.InMemoryEntryRepository
}

func setupAPI() *testAPI {
	gin.SetMode(gin.TestMode)

	habitRepo := repository.NewInMemoryHabitRepository()
	entryRepo := repository.NewInMemoryEntryRepository()
	streaks := cache.NewMemoryStreakCache()
	worker := workers.NewStreakWorker(habitRepo, entryRepo, streaks, testClock)

	habitSvc := services.NewHabitService(habitRepo, entryRepo)
	entrySvc := services.NewEntryService(entryRepo, habitRepo, worker, testClock)
	statsSvc := services.NewStatsService(habitRepo, entryRepo, streaks, testClock)
	exportSvc := services.NewExportService(habitRepo, entryRepo, testClock)

	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(middleware.RequireUserID())

	adapterHTTP.NewHabitHandler(habitSvc).RegisterRoutes(api)
	adapterHTTP.NewEntryHandler(entrySvc).RegisterRoutes(api)
	adapterHTTP.NewStatsHandler(statsSvc).RegisterRoutes(api)
	adapterHTTP.NewExportHandler(exportSvc).RegisterRoutes(api)

	return &testAPI{router: router, habitRepo: habitRepo, entryRepo: entryRepo}
}

func (a *testAPI) do(t *testing.T, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// seedHabit plants a habit directly in the store, backdated so the frozen
// clock sees a full history window.
func (a *testAPI) seedHabit(t *testing.T, userID, name, hType string, goal float64) *domain.Habit {
	t.Helper()

	habit, err := domain.NewHabit(userID, name, hType, "", goal)
	require.NoError(t, err)
	habit.CreatedAt = calendar.MustParseDate("2025-02-24")
	habit.UpdatedAt = habit.CreatedAt
	require.NoError(t, a.habitRepo.Create(context.Background(), habit))
	return habit
}

func (a *testAPI) seedEntry(t *testing.T, habit *domain.Habit, date string, value float64) {
	t.Helper()

	entry := domain.NewDailyEntry(habit.ID, habit.UserID, date, value, nil)
	require.NoError(t, a.entryRepo.Upsert(context.Background(), entry))
}
