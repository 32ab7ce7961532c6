package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnonymousUserID is recorded when an upload carries no user identity.
const AnonymousUserID = "anonymous"

// FoodDetection records one food-photo analysis and the payload returned for it.
type FoodDetection struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    string    `gorm:"size:64;not null;default:'anonymous';index" json:"user_id"`
	ImageName string    `gorm:"size:255" json:"image_name"`
	ImageSize int64     `json:"image_size"`
	ImageType string    `gorm:"size:100" json:"image_type"`
	ImageURL  string    `gorm:"size:512" json:"image_url,omitempty"`
	Results   JSON      `gorm:"type:jsonb;not null" json:"detection_results"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for the FoodDetection model
func (FoodDetection) TableName() string {
	return "food_detections"
}

func (d *FoodDetection) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.UserID == "" {
		d.UserID = AnonymousUserID
	}
	return nil
}
