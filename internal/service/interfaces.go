package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/fittrack/backend/internal/fitness"
	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

// IBurnService defines the calorie burn calculator operations
type IBurnService interface {
	Activities(category string) ([]fitness.ActivityDescriptor, error)
	Estimate(req *types.BurnEstimateRequest) (*types.BurnEstimateResponse, error)
	QuickWorkouts() ([]types.QuickWorkout, error)
}

// IDetectionService defines the food photo analysis operation
type IDetectionService interface {
	DetectFood(ctx context.Context, upload *FoodUpload) (*types.DetectionResponse, error)
}

// IJournalService defines the journal operations
type IJournalService interface {
	CreateEntry(ctx context.Context, userID string, req *types.CreateJournalEntryRequest) (*models.JournalEntry, error)
	ListEntries(ctx context.Context, userID, period string) ([]types.JournalDay, error)
	DeleteEntry(ctx context.Context, userID string, id uuid.UUID) error
	Summary(ctx context.Context, userID, period string) (*types.JournalSummary, error)
}

// IDashboardService defines the dashboard operations
type IDashboardService interface {
	DailyStats(ctx context.Context, userID string, day time.Time) (*types.DailyStats, error)
	WeeklyStats(ctx context.Context, userID string, day time.Time) (*types.WeeklyStats, error)
}

// IAgentService defines the health agent chat operations
type IAgentService interface {
	Ask(ctx context.Context, userID, message string) (*types.ChatMessage, error)
	QuickQuestions() []string
	History(ctx context.Context, userID string) ([]types.ChatMessage, error)
}

// ISessionService defines guest session operations
type ISessionService interface {
	CreateSession(displayName string) (*types.SessionResponse, error)
	ValidateToken(token string) (*types.SessionClaims, error)
}

// IProfileService defines health profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.HealthProfile, error)
	UpdateProfile(ctx context.Context, userID string, req *types.UpdateProfileRequest) (*models.HealthProfile, error)
	GetProfileHistory(ctx context.Context, userID string) ([]models.ProfileHistory, error)
}

// ImageStore persists uploaded photos and returns a URL for them.
type ImageStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}
