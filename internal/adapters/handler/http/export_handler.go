package http

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/services"
)

type ExportHandler struct {
	svc *services.ExportService
}

func NewExportHandler(svc *services.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

func (h *ExportHandler) RegisterRoutes(router *gin.RouterGroup) {
	export := router.Group("/export")
	{
		export.GET("/json", h.JSON)
		export.GET("/habits.csv", h.HabitsCSV)
		export.GET("/entries.csv", h.EntriesCSV)
	}
}

// JSON godoc
// @Summary Full JSON backup
// @Description Everything the user owns, archived habits included.
// @Tags export
// @Produce json
// @Param X-User-ID header string true "User scope"
// @Success 200 {object} export.Document
// @Router /export/json [get]
func (h *ExportHandler) JSON(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	doc, err := h.svc.Document(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="habits-export.json"`)
	c.JSON(http.StatusOK, doc)
}

// HabitsCSV godoc
// @Summary Habit definitions as CSV
// @Tags export
// @Produce text/csv
// @Param X-User-ID header string true "User scope"
// @Success 200 {string} string
// @Router /export/habits.csv [get]
func (h *ExportHandler) HabitsCSV(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	// Buffered so a load failure still yields a clean error response
	// instead of a truncated download.
	var buf bytes.Buffer
	if err := h.svc.WriteHabitsCSV(c.Request.Context(), userID, &buf); err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="habits.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// EntriesCSV godoc
// @Summary Entry history as CSV
// @Description One judged row per entry: the daily goal in force and whether the day counted as complete.
// @Tags export
// @Produce text/csv
// @Param X-User-ID header string true "User scope"
// @Success 200 {string} string
// @Router /export/entries.csv [get]
func (h *ExportHandler) EntriesCSV(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	var buf bytes.Buffer
	if err := h.svc.WriteEntriesCSV(c.Request.Context(), userID, &buf); err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="entries.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
