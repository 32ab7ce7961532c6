package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Journal entry types. Food adds calories; workout and yoga subtract.
const (
	EntryTypeFood    = "food"
	EntryTypeWorkout = "workout"
	EntryTypeYoga    = "yoga"
)

// ValidEntryTypes is the set of accepted JournalEntry.Type values.
var ValidEntryTypes = map[string]bool{
	EntryTypeFood:    true,
	EntryTypeWorkout: true,
	EntryTypeYoga:    true,
}

// JournalEntry is one food or workout line in a user's journal. Calories are
// stored positive; Type decides the direction.
type JournalEntry struct {
	ID              uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID          string         `gorm:"size:64;not null;index" json:"user_id"`
	Type            string         `gorm:"size:20;not null" json:"type"`
	Title           string         `gorm:"size:255;not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Calories        int            `gorm:"not null;check:calories >= 0" json:"calories"`
	CarbsG          *int           `json:"carbs_g,omitempty"`
	ProteinG        *int           `json:"protein_g,omitempty"`
	FatG            *int           `json:"fat_g,omitempty"`
	ActivityID      string         `gorm:"size:64" json:"activity_id,omitempty"`
	DurationMinutes float64        `json:"duration_minutes,omitempty"`
	OccurredAt      time.Time      `gorm:"not null;index" json:"occurred_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the JournalEntry model
func (JournalEntry) TableName() string {
	return "journal_entries"
}

func (e *JournalEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// IsFood reports whether the entry adds calories.
func (e *JournalEntry) IsFood() bool {
	return e.Type == EntryTypeFood
}

// SignedCalories returns +calories for food and -calories otherwise.
func (e *JournalEntry) SignedCalories() int {
	if e.IsFood() {
		return e.Calories
	}
	return -e.Calories
}
