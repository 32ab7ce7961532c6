package types

import (
	"time"

	"github.com/pageza/fittrack/backend/internal/fitness"
	"github.com/pageza/fittrack/backend/internal/models"
)

// BurnEstimateResponse is a calculator result.
type BurnEstimateResponse struct {
	Activity        *fitness.ActivityDescriptor `json:"activity,omitempty"`
	MET             float64                     `json:"met"`
	WeightKg        float64                     `json:"weight_kg"`
	DurationMinutes float64                     `json:"duration_minutes"`
	CaloriesBurned  int                         `json:"calories_burned"`
}

// QuickWorkout is a suggested preset on the calorie burn page.
type QuickWorkout struct {
	Name            string  `json:"name"`
	ActivityID      string  `json:"activity_id"`
	DurationMinutes float64 `json:"duration_minutes"`
	Intensity       string  `json:"intensity"`
	Calories        int     `json:"calories"`
}

// MealAggregateResponse wraps an aggregate with an optional warning.
type MealAggregateResponse struct {
	fitness.MealAggregate
	Warning string `json:"warning,omitempty"`
}

// JournalDay groups the entries of one calendar day.
type JournalDay struct {
	Date    string                `json:"date"`
	NetKcal int                   `json:"net_kcal"`
	Entries []models.JournalEntry `json:"entries"`
}

// JournalSummary totals a journal period.
type JournalSummary struct {
	Period       string    `json:"period"`
	From         time.Time `json:"from"`
	ConsumedKcal int       `json:"consumed_kcal"`
	BurnedKcal   int       `json:"burned_kcal"`
	Entries      int       `json:"entries"`
}

// DailyStats is the dashboard view of one day.
type DailyStats struct {
	Date             string                 `json:"date"`
	CaloriesConsumed int                    `json:"calories_consumed"`
	CaloriesBurned   int                    `json:"calories_burned"`
	CaloriesGoal     int                    `json:"calories_goal"`
	NetCalories      int                    `json:"net_calories"`
	GoalProgress     int                    `json:"goal_progress"`
	Macros           fitness.MacroBreakdown `json:"macros"`
}

// WeeklyStats is the dashboard view of seven days ending on To.
type WeeklyStats struct {
	From             string                 `json:"from"`
	To               string                 `json:"to"`
	CaloriesConsumed int                    `json:"calories_consumed"`
	CaloriesBurned   int                    `json:"calories_burned"`
	CaloriesGoal     int                    `json:"calories_goal"`
	NetCalories      int                    `json:"net_calories"`
	GoalProgress     int                    `json:"goal_progress"`
	AverageConsumed  int                    `json:"average_consumed"`
	Macros           fitness.MacroBreakdown `json:"macros"`
	Days             []DailyStats           `json:"days"`
}

// Chat roles.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

// ChatMessage is one line of an agent conversation.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionResponse returns a new guest session.
type SessionResponse struct {
	Token       string    `json:"token"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	ExpiresAt   time.Time `json:"expires_at"`
}
