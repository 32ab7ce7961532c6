package api

import (
	"net/http"
	"testing"

	"github.com/pageza/fittrack/backend/internal/fitness"
	"github.com/pageza/fittrack/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMeal(t *testing.T) {
	a := newTestAPI(t, nil)

	req := types.MealAggregateRequest{Items: []fitness.FoodItem{
		{Name: "Oats", Calories: 150, CarbsG: intPtr(27), ProteinG: intPtr(5), FatG: intPtr(3)},
		{Name: "Egg", Calories: 78, ProteinG: intPtr(6), FatG: intPtr(5)},
	}}
	w := a.do(t, http.MethodPost, "/api/v1/meals/aggregate", "", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[types.MealAggregateResponse](t, w)
	assert.Equal(t, 228, resp.TotalCalories)
	assert.Equal(t, fitness.MacroBreakdown{Carbs: 59, Protein: 24, Fat: 17}, resp.Macros)
	assert.False(t, resp.MacrosSupplied)
	assert.Empty(t, resp.Warning)
}

func TestAggregateMealWithBreakdown(t *testing.T) {
	a := newTestAPI(t, nil)
	items := []fitness.FoodItem{{Name: "Apple", Calories: 95}, {Name: "Nuts", Calories: 180}, {Name: "Milk", Calories: 120}}
	nutrition := &fitness.MacroBreakdown{Carbs: 45, Protein: 12, Fat: 18}

	w := a.do(t, http.MethodPost, "/api/v1/meals/aggregate", "", types.MealAggregateRequest{
		Items: items, Nutrition: nutrition, TotalCalories: intPtr(395),
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[types.MealAggregateResponse](t, w)
	assert.Equal(t, 395, resp.TotalCalories)
	assert.Equal(t, *nutrition, resp.Macros)
	assert.True(t, resp.MacrosSupplied)
	assert.Empty(t, resp.Warning)

	// a disagreeing total still succeeds with the recomputed value
	w = a.do(t, http.MethodPost, "/api/v1/meals/aggregate", "", types.MealAggregateRequest{
		Items: items, Nutrition: nutrition, TotalCalories: intPtr(400),
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[types.MealAggregateResponse](t, w)
	assert.Equal(t, 395, resp.TotalCalories)
	assert.NotEmpty(t, resp.Warning)
	require.NotNil(t, resp.Inconsistency)
	assert.Equal(t, 400, resp.Inconsistency.Supplied)

	// within tolerance
	w = a.do(t, http.MethodPost, "/api/v1/meals/aggregate", "", types.MealAggregateRequest{
		Items: items, Nutrition: nutrition, TotalCalories: intPtr(400), Tolerance: intPtr(5),
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[types.MealAggregateResponse](t, w).Warning)
}

func TestAggregateMealRejectsInvalidInput(t *testing.T) {
	a := newTestAPI(t, nil)

	w := a.do(t, http.MethodPost, "/api/v1/meals/aggregate", "", types.MealAggregateRequest{
		Items: []fitness.FoodItem{{Name: "Mystery", Calories: -10}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPost, "/api/v1/meals/aggregate", "", types.MealAggregateRequest{
		Items:     []fitness.FoodItem{{Name: "Apple", Calories: 95}},
		Nutrition: &fitness.MacroBreakdown{},
		Tolerance: intPtr(-1),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPost, "/api/v1/meals/aggregate", "", "not a meal")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
