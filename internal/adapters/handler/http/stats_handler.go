package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	stats := router.Group("/stats")
	{
		stats.GET("/weekly", h.Weekly)
		stats.GET("/overall", h.Overall)
		stats.GET("/dashboard", h.Dashboard)
	}

	streaks := router.Group("/streaks")
	{
		streaks.GET("", h.OverallStreak)
		streaks.GET("/:habitId", h.HabitStreak)
	}
}

// Weekly godoc
// @Summary Weekly stats
// @Description Pacing numbers for one week. week_start accepts any date and lands on its Monday; empty means the current week. habit_id narrows to one habit.
// @Tags stats
// @Produce json
// @Param X-User-ID header string true "User scope"
// @Param week_start query string false "Any date inside the wanted week (YYYY-MM-DD)"
// @Param habit_id query string false "Habit ID"
// @Success 200 {array} domain.WeeklyStats
// @Failure 400 {object} map[string]string
// @Router /stats/weekly [get]
func (h *StatsHandler) Weekly(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	stats, err := h.svc.WeeklyStats(c.Request.Context(), userID, c.Query("habit_id"), c.Query("week_start"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Overall godoc
// @Summary Cross-habit stats for a week
// @Tags stats
// @Produce json
// @Param X-User-ID header string true "User scope"
// @Param week_start query string false "Any date inside the wanted week (YYYY-MM-DD)"
// @Success 200 {object} domain.OverallStats
// @Failure 400 {object} map[string]string
// @Router /stats/overall [get]
func (h *StatsHandler) Overall(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	stats, err := h.svc.OverallStats(c.Request.Context(), userID, c.Query("week_start"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Dashboard godoc
// @Summary Current-week dashboard
// @Description Overall stats and pacing computed from one data snapshot, so the sections always agree.
// @Tags stats
// @Produce json
// @Param X-User-ID header string true "User scope"
// @Success 200 {object} services.Dashboard
// @Router /stats/dashboard [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	dash, err := h.svc.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dash)
}

// HabitStreak godoc
// @Summary One habit's streak state
// @Tags streaks
// @Produce json
// @Param X-User-ID header string true "User scope"
// @Param habitId path string true "Habit ID"
// @Success 200 {object} domain.StreakData
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /streaks/{habitId} [get]
func (h *StatsHandler) HabitStreak(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	streak, err := h.svc.HabitStreak(c.Request.Context(), c.Param("habitId"), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, streak)
}

// OverallStreak godoc
// @Summary The all-habits streak
// @Tags streaks
// @Produce json
// @Param X-User-ID header string true "User scope"
// @Success 200 {object} domain.OverallStreak
// @Router /streaks [get]
func (h *StatsHandler) OverallStreak(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	streak, err := h.svc.OverallStreak(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, streak)
}
