package models

import (
	"time"

	"gorm.io/gorm"
)

// ProfileHistory records one changed health profile field, so weight and goal
// changes can be shown over time.
type ProfileHistory struct {
	gorm.Model
	UserID    string    `gorm:"size:64;index;not null" json:"user_id"`
	Field     string    `gorm:"size:50;not null" json:"field"`
	OldValue  string    `gorm:"type:text" json:"old_value"`
	NewValue  string    `gorm:"type:text" json:"new_value"`
	ChangedAt time.Time `gorm:"not null" json:"changed_at"`
}

// TableName specifies the table name for ProfileHistory
func (ProfileHistory) TableName() string {
	return "profile_history"
}
