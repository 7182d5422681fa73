package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/calendar"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/services"
)

type EntryHandler struct {
	svc *services.EntryService
}

func NewEntryHandler(svc *services.EntryService) *EntryHandler {
	return &EntryHandler{
		svc: svc,
	}
}

type upsertEntryRequest struct {
	HabitID string  `json:"habitId" binding:"required"`
	Date    string  `json:"date" binding:"required"`
	Value   float64 `json:"value"`

	// TargetAtEntry force-sets the goal snapshot. Normal clients leave it
	// out; backup imports use it to restore historical targets.
	TargetAtEntry *float64 `json:"targetAtEntry"`
}

func (h *EntryHandler) RegisterRoutes(router *gin.RouterGroup) {
	entries := router.Group("/entries")
	{
		entries.PUT("", h.Upsert)
		entries.GET("", h.List)
	}
}

// Upsert godoc
// @Summary Log a habit value for a date
// @Description Creates or overwrites the single entry for (habit, date). Last write wins.
// @Tags entries
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User scope"
// @Param request body upsertEntryRequest true "Entry"
// @Success 200 {object} domain.DailyEntry
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /entries [put]
func (h *EntryHandler) Upsert(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	var req upsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	input := services.UpsertEntryInput{
		HabitID:       req.HabitID,
		UserID:        userID,
		Date:          req.Date,
		Value:         req.Value,
		TargetAtEntry: req.TargetAtEntry,
	}

	entry, err := h.svc.Upsert(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// List godoc
// @Summary List entries
// @Description Lists one habit's entries when habit_id is given, otherwise every entry the user owns. from/to are inclusive YYYY-MM-DD bounds.
// @Tags entries
// @Produce json
// @Param X-User-ID header string true "User scope"
// @Param habit_id query string false "Habit ID"
// @Param from query string false "Inclusive lower date bound"
// @Param to query string false "Inclusive upper date bound"
// @Success 200 {array} domain.DailyEntry
// @Failure 400 {object} map[string]string
// @Router /entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	from := c.Query("from")
	to := c.Query("to")

	var (
		list []*domain.DailyEntry
		err  error
	)

	if habitID := c.Query("habit_id"); habitID != "" {
		list, err = h.svc.ListByHabit(c.Request.Context(), habitID, userID, from, to)
	} else {
		list, err = h.svc.ListByUser(c.Request.Context(), userID, from, to)
	}
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized access"})

	case errors.Is(err, domain.ErrEntryNotFound) || errors.Is(err, domain.ErrHabitNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})

	case errors.Is(err, domain.ErrHabitExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrHabitArchived):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrEntryLocked) || errors.Is(err, domain.ErrEntryInFuture):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

	case errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidEntry),
		errors.Is(err, domain.ErrHabitNameEmpty),
		errors.Is(err, domain.ErrHabitNameTooLong),
		errors.Is(err, domain.ErrInvalidHabitType),
		errors.Is(err, domain.ErrInvalidWeeklyGoal),
		errors.Is(err, domain.ErrHabitInvalidUserID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request failed")

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
