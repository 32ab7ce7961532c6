package models

import "time"

// DefaultDailyCalorieGoal applies when a profile has not set one.
const DefaultDailyCalorieGoal = 2000

// HealthProfile is the body profile used by the calculator, dashboard and agent.
type HealthProfile struct {
	UserID           string    `gorm:"size:64;primarykey" json:"user_id"`
	DisplayName      string    `gorm:"size:100" json:"display_name"`
	HeightCm         float64   `json:"height_cm"`
	WeightKg         float64   `json:"weight_kg"`
	Gender           string    `gorm:"size:20" json:"gender"`
	Age              int       `json:"age"`
	DailyCalorieGoal int       `gorm:"not null;default:2000" json:"daily_calorie_goal"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName returns the table name for the HealthProfile model
func (HealthProfile) TableName() string {
	return "health_profiles"
}

// CalorieGoal returns the profile goal or the default.
func (p *HealthProfile) CalorieGoal() int {
	if p == nil || p.DailyCalorieGoal <= 0 {
		return DefaultDailyCalorieGoal
	}
	return p.DailyCalorieGoal
}
