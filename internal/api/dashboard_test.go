package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/fittrack/backend/internal/middleware"
	"github.com/pageza/fittrack/backend/internal/mocks"
	"github.com/pageza/fittrack/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetDailyStats(t *testing.T) {
	a := newTestAPI(t, nil)
	occurred := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	for _, req := range []types.CreateJournalEntryRequest{
		{Type: "food", Title: "Lunch", Calories: intPtr(600), CarbsG: intPtr(60), ProteinG: intPtr(30), FatG: intPtr(10), OccurredAt: &occurred},
		{Type: "yoga", Title: "Stretch", Calories: intPtr(100), OccurredAt: &occurred},
	} {
		w := a.do(t, http.MethodPost, "/api/v1/journal", "user-1", req)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := a.do(t, http.MethodGet, "/api/v1/dashboard/daily?date=2026-03-14", "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stats := decode[types.DailyStats](t, w)
	assert.Equal(t, "2026-03-14", stats.Date)
	assert.Equal(t, 600, stats.CaloriesConsumed)
	assert.Equal(t, 100, stats.CaloriesBurned)
	assert.Equal(t, 2000, stats.CaloriesGoal)
	assert.Equal(t, 500, stats.NetCalories)
	assert.Equal(t, 30, stats.GoalProgress)
	assert.Equal(t, 60, stats.Macros.Carbs)

	w = a.do(t, http.MethodGet, "/api/v1/dashboard/daily?date=2026-03-15", "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[types.DailyStats](t, w).CaloriesConsumed)
}

func TestGetDailyStatsBadDate(t *testing.T) {
	a := newTestAPI(t, nil)

	w := a.do(t, http.MethodGet, "/api/v1/dashboard/daily?date=14-03-2026", "user-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDailyStatsDefaultsToToday(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dashboard := new(mocks.MockDashboardService)
	dashboard.On("DailyStats", mock.Anything, "user-9", mock.MatchedBy(func(day time.Time) bool {
		return day.Format("2006-01-02") == time.Now().UTC().Format("2006-01-02")
	})).Return(&types.DailyStats{CaloriesGoal: 1800}, nil)

	router := gin.New()
	router.Use(middleware.Identity(nil))
	NewDashboardHandler(dashboard).RegisterRoutes(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/daily", nil)
	req.Header.Set(middleware.UserIDHeader, "user-9")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1800, decode[types.DailyStats](t, w).CaloriesGoal)
	dashboard.AssertExpectations(t)
}

func TestGetWeeklyStats(t *testing.T) {
	a := newTestAPI(t, nil)
	day := func(d, h int) *time.Time {
		ts := time.Date(2026, 3, d, h, 0, 0, 0, time.UTC)
		return &ts
	}

	for _, req := range []types.CreateJournalEntryRequest{
		{Type: "food", Title: "Lunch", Calories: intPtr(600), CarbsG: intPtr(60), ProteinG: intPtr(30), FatG: intPtr(10), OccurredAt: day(14, 12)},
		{Type: "food", Title: "Dinner", Calories: intPtr(800), CarbsG: intPtr(40), ProteinG: intPtr(50), FatG: intPtr(10), OccurredAt: day(8, 19)},
		{Type: "workout", Title: "Run", Calories: intPtr(300), OccurredAt: day(10, 7)},
		{Type: "food", Title: "Too old", Calories: intPtr(5000), OccurredAt: day(7, 23)},
	} {
		w := a.do(t, http.MethodPost, "/api/v1/journal", "user-1", req)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := a.do(t, http.MethodGet, "/api/v1/dashboard/weekly?date=2026-03-14", "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	week := decode[types.WeeklyStats](t, w)
	assert.Equal(t, "2026-03-08", week.From)
	assert.Equal(t, "2026-03-14", week.To)
	assert.Equal(t, 1400, week.CaloriesConsumed)
	assert.Equal(t, 300, week.CaloriesBurned)
	assert.Equal(t, 14000, week.CaloriesGoal)
	assert.Equal(t, 1100, week.NetCalories)
	assert.Equal(t, 10, week.GoalProgress)
	assert.Equal(t, 200, week.AverageConsumed)
	assert.Equal(t, 50, week.Macros.Carbs)
	assert.Equal(t, 40, week.Macros.Protein)
	assert.Equal(t, 10, week.Macros.Fat)

	require.Len(t, week.Days, 7)
	assert.Equal(t, "2026-03-08", week.Days[0].Date)
	assert.Equal(t, 800, week.Days[0].CaloriesConsumed)
	assert.Equal(t, 300, week.Days[2].CaloriesBurned)
	assert.Equal(t, "2026-03-14", week.Days[6].Date)
	assert.Equal(t, 600, week.Days[6].CaloriesConsumed)
}

func TestGetWeeklyStatsBadDate(t *testing.T) {
	a := newTestAPI(t, nil)

	w := a.do(t, http.MethodGet, "/api/v1/dashboard/weekly?date=yesterday", "user-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
