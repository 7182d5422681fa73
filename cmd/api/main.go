package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	_ "github.com/comitanigiacomo/kanso-habit-engine/docs"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-habit-engine/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/config"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/services"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/workers"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// @title Kanso Habit Engine API
// @version 1.0
// @description Habit analytics service: entries, weekly stats, streaks and exports. Requests are scoped by the X-User-ID header.
// @BasePath /api/v1
func main() {
	startTime := time.Now()

	_ = godotenv.Load()
	config.InitLogger()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getenv("DB_USER", "habits_user"),
		getenv("DB_PASSWORD", "secret"),
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		getenv("DB_NAME", "habits_db"),
	)

	logrus.Info("connecting to database")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	logrus.Info("database connected")

	var habitRepo domain.HabitRepository = repository.NewPostgresHabitRepository(db)
	entryRepo := repository.NewPostgresEntryRepository(db)

	// Redis is optional. Without it the streak cache degrades to an
	// in-process memo and the rate limiter is not installed.
	var streakCache domain.StreakCache = cache.NewMemoryStreakCache()
	rdb, err := cache.NewRedisClient(
		getenv("REDIS_HOST", "localhost"),
		getenv("REDIS_PORT", "6379"),
		os.Getenv("REDIS_PASSWORD"),
		envInt("REDIS_DB", 0),
	)
	if err != nil {
		logrus.WithError(err).Warn("redis unavailable, running without shared caches")
		rdb = nil
	} else {
		streakCache = cache.NewRedisStreakCache(rdb)
		habitRepo = repository.NewCachedHabitRepository(habitRepo, rdb)
	}

	worker := workers.NewStreakWorker(habitRepo, entryRepo, streakCache, time.Now)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	worker.Start(workerCtx)

	habitService := services.NewHabitService(habitRepo, entryRepo)
	entryService := services.NewEntryService(entryRepo, habitRepo, worker, time.Now)
	statsService := services.NewStatsService(habitRepo, entryRepo, streakCache, time.Now)
	exportService := services.NewExportService(habitRepo, entryRepo, time.Now)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		HabitHandler:  adapterHTTP.NewHabitHandler(habitService),
		EntryHandler:  adapterHTTP.NewEntryHandler(entryService),
		StatsHandler:  adapterHTTP.NewStatsHandler(statsService),
		ExportHandler: adapterHTTP.NewExportHandler(exportService),
		DB:            db,
		Redis:         rdb,
		StartTime:     startTime,
		RateLimit:     envInt("RATE_LIMIT_REQUESTS", 100),
		RateWindow:    time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	})

	serverPort := getenv("PORT", "8080")

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.Infof("habit engine running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("stop signal received, shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("forced shutdown")
	}
	stopWorker()

	logrus.Info("server stopped gracefully")
}

func envInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}
