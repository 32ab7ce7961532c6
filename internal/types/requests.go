package types

import (
	"time"

	"github.com/pageza/fittrack/backend/internal/fitness"
)

// BurnEstimateRequest asks for a calorie estimate. Either ActivityID or MET
// must be given; ActivityID wins when both are set.
type BurnEstimateRequest struct {
	ActivityID      string   `json:"activity_id"`
	MET             *float64 `json:"met"`
	WeightKg        float64  `json:"weight_kg"`
	DurationMinutes float64  `json:"duration_minutes"`
}

// MealAggregateRequest carries a meal to aggregate. When Nutrition is set it is
// passed through and TotalCalories, if given, is checked against the items.
type MealAggregateRequest struct {
	Items         []fitness.FoodItem      `json:"items"`
	Nutrition     *fitness.MacroBreakdown `json:"nutrition"`
	TotalCalories *int                    `json:"total_calories"`
	Tolerance     *int                    `json:"tolerance"`
}

// CreateJournalEntryRequest adds a journal entry. Workouts may omit Calories
// and give ActivityID plus DurationMinutes instead.
type CreateJournalEntryRequest struct {
	Type            string     `json:"type" binding:"required"`
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	Calories        *int       `json:"calories"`
	CarbsG          *int       `json:"carbs_g"`
	ProteinG        *int       `json:"protein_g"`
	FatG            *int       `json:"fat_g"`
	ActivityID      string     `json:"activity_id"`
	DurationMinutes float64    `json:"duration_minutes"`
	OccurredAt      *time.Time `json:"occurred_at"`
}

// UpdateProfileRequest changes the health profile. Nil fields are left alone.
type UpdateProfileRequest struct {
	DisplayName      *string  `json:"display_name"`
	HeightCm         *float64 `json:"height_cm"`
	WeightKg         *float64 `json:"weight_kg"`
	Gender           *string  `json:"gender"`
	Age              *int     `json:"age"`
	DailyCalorieGoal *int     `json:"daily_calorie_goal"`
}

// SessionRequest starts a guest session.
type SessionRequest struct {
	DisplayName string `json:"display_name"`
}

// AgentAskRequest is one chat message to the agent.
type AgentAskRequest struct {
	Message string `json:"message" binding:"required"`
}
