package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/services"
)

type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler {
	return &HabitHandler{
		svc: svc,
	}
}

type createHabitRequest struct {
	Name       string  `json:"name" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	WeeklyGoal float64 `json:"weeklyGoal"`
	Unit       string  `json:"unit"`
}

// updateHabitRequest carries only the fields the client wants to change;
// absent fields keep their stored values.
type updateHabitRequest struct {
	Name       *string  `json:"name"`
	WeeklyGoal *float64 `json:"weeklyGoal"`
	Unit       *string  `json:"unit"`
	Order      *int     `json:"order"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.POST("", h.Create)
		habits.GET("", h.List)
		habits.GET("/:id", h.GetByID)
		habits.PUT("/:id", h.Update)
		habits.DELETE("/:id", h.Delete)
		habits.POST("/:id/archive", h.Archive)
		habits.POST("/:id/restore", h.Restore)
	}
}

// Create godoc
// @Summary Create a habit
// @Tags habits
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User scope"
// @Param request body createHabitRequest true "Habit definition"
// @Success 201 {object} domain.Habit
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /habits [post]
func (h *HabitHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	input := services.CreateHabitInput{
		UserID:     userID,
		Name:       req.Name,
		Type:       req.Type,
		WeeklyGoal: req.WeeklyGoal,
		Unit:       req.Unit,
	}

	habit, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// List godoc
// @Summary List the user's habits
// @Tags habits
// @Produce json
// @Param X-User-ID header string true "User scope"
// @Param include_archived query bool false "Include archived habits"
// @Success 200 {array} domain.Habit
// @Router /habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	includeArchived := c.Query("include_archived") == "true"

	habits, err := h.svc.ListByUserID(c.Request.Context(), userID, includeArchived)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, habits)
}

// GetByID godoc
// @Summary Get one habit
// @Tags habits
// @Produce json
// @Param X-User-ID header string true "User scope"
// @Param id path string true "Habit ID"
// @Success 200 {object} domain.Habit
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /habits/{id} [get]
func (h *HabitHandler) GetByID(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	habit, err := h.svc.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

// Update godoc
// @Summary Update a habit's name, goal, unit or position
// @Tags habits
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User scope"
// @Param id path string true "Habit ID"
// @Param request body updateHabitRequest true "Fields to change"
// @Success 200 {object} domain.Habit
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /habits/{id} [put]
func (h *HabitHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	var req updateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	input := services.UpdateHabitInput{
		ID:         c.Param("id"),
		UserID:     userID,
		Name:       req.Name,
		WeeklyGoal: req.WeeklyGoal,
		Unit:       req.Unit,
		Order:      req.Order,
	}

	habit, err := h.svc.Update(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

// Delete godoc
// @Summary Delete a habit and its entry history
// @Tags habits
// @Param X-User-ID header string true "User scope"
// @Param id path string true "Habit ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /habits/{id} [delete]
func (h *HabitHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Archive godoc
// @Summary Archive a habit
// @Tags habits
// @Produce json
// @Param X-User-ID header string true "User scope"
// @Param id path string true "Habit ID"
// @Success 200 {object} domain.Habit
// @Failure 404 {object} map[string]string
// @Router /habits/{id}/archive [post]
func (h *HabitHandler) Archive(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	habit, err := h.svc.Archive(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

// Restore godoc
// @Summary Restore an archived habit
// @Tags habits
// @Produce json
// @Param X-User-ID header string true "User scope"
// @Param id path string true "Habit ID"
// @Success 200 {object} domain.Habit
// @Failure 404 {object} map[string]string
// @Router /habits/{id}/restore [post]
func (h *HabitHandler) Restore(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	habit, err := h.svc.Restore(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}
