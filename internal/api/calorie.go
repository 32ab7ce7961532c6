package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

// CalorieHandler serves the activity catalog and burn calculator.
type CalorieHandler struct {
	burn service.IBurnService
}

func NewCalorieHandler(burn service.IBurnService) *CalorieHandler {
	return &CalorieHandler{burn: burn}
}

func (h *CalorieHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/activities", h.ListActivities)
	router.POST("/calorie-burn/estimate", h.Estimate)
	router.GET("/workouts/quick", h.QuickWorkouts)
}

// ListActivities returns the catalog, filtered by ?category= when given.
func (h *CalorieHandler) ListActivities(c *gin.Context) {
	activities, err := h.burn.Activities(c.Query("category"))
	if err != nil {
		respondError(c, err, "failed to list activities")
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (h *CalorieHandler) Estimate(c *gin.Context) {
	var req types.BurnEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	resp, err := h.burn.Estimate(&req)
	if err != nil {
		respondError(c, err, "failed to estimate calories")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CalorieHandler) QuickWorkouts(c *gin.Context) {
	workouts, err := h.burn.QuickWorkouts()
	if err != nil {
		respondError(c, err, "failed to load quick workouts")
		return
	}
	c.JSON(http.StatusOK, workouts)
}
