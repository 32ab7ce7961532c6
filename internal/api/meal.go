package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/fittrack/backend/internal/fitness"
	"github.com/pageza/fittrack/backend/internal/types"
)

// MealHandler aggregates meals. It has no state; the work is done by the
// fitness package.
type MealHandler struct{}

func NewMealHandler() *MealHandler {
	return &MealHandler{}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/meals/aggregate", h.Aggregate)
}

// Aggregate computes the meal totals. A supplied nutrition breakdown is passed
// through and its total checked; a mismatch is a warning, not a failure.
func (h *MealHandler) Aggregate(c *gin.Context) {
	var req types.MealAggregateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	agg, err := fitness.Aggregate(req.Items)
	if err != nil {
		respondError(c, err, "failed to aggregate meal")
		return
	}

	resp := types.MealAggregateResponse{}
	if req.Nutrition != nil {
		total := agg.TotalCalories
		if req.TotalCalories != nil {
			total = *req.TotalCalories
		}
		tolerance := fitness.DefaultTolerance
		if req.Tolerance != nil {
			tolerance = *req.Tolerance
		}

		agg, err = fitness.AggregateWithBreakdown(req.Items, *req.Nutrition, total, tolerance)
		var inconsistent *fitness.InconsistentDataError
		switch {
		case errors.As(err, &inconsistent):
			log.Printf("[MealHandler] Warning: %v", inconsistent)
			resp.Warning = inconsistent.Error()
		case err != nil:
			respondError(c, err, "failed to aggregate meal")
			return
		}
	}

	resp.MealAggregate = agg
	c.JSON(http.StatusOK, resp)
}
