package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/fittrack/backend/internal/middleware"
	"github.com/pageza/fittrack/backend/internal/service"
)

type DashboardHandler struct {
	dashboard service.IDashboardService
}

func NewDashboardHandler(dashboard service.IDashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard/daily", h.GetDaily)
	router.GET("/dashboard/weekly", h.GetWeekly)
}

// GetDaily returns the stats for ?date=YYYY-MM-DD, or today in UTC.
func (h *DashboardHandler) GetDaily(c *gin.Context) {
	day, ok := queryDay(c)
	if !ok {
		return
	}

	stats, err := h.dashboard.DailyStats(c.Request.Context(), middleware.UserID(c), day)
	if err != nil {
		respondError(c, err, "failed to get daily stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetWeekly returns the seven days ending on ?date, or on today in UTC.
func (h *DashboardHandler) GetWeekly(c *gin.Context) {
	day, ok := queryDay(c)
	if !ok {
		return
	}

	stats, err := h.dashboard.WeeklyStats(c.Request.Context(), middleware.UserID(c), day)
	if err != nil {
		respondError(c, err, "failed to get weekly stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func queryDay(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now().UTC(), true
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}
