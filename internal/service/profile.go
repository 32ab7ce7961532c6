package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pageza/fittrack/backend/internal/fitness"
	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
	"gorm.io/gorm"
)

// Accepted profile ranges, matching the client's input limits.
const (
	MinWeightKg = 30.0
	MaxWeightKg = 200.0
	MinHeightCm = 50.0
	MaxHeightCm = 250.0
)

var validGenders = map[string]bool{"": true, "male": true, "female": true, "other": true}

// ProfileService handles health profile operations
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// defaultProfile is what a user sees before saving anything.
func defaultProfile(userID string) *models.HealthProfile {
	return &models.HealthProfile{
		UserID:           userID,
		HeightCm:         170,
		WeightKg:         DefaultWeightKg,
		Age:              25,
		DailyCalorieGoal: models.DefaultDailyCalorieGoal,
	}
}

// GetProfile retrieves a user's profile, or the defaults if none was saved.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.HealthProfile, error) {
	var profile models.HealthProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaultProfile(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile validates and applies the non-nil fields of req, recording a
// history row per changed field.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, req *types.UpdateProfileRequest) (*models.HealthProfile, error) {
	if err := validateProfileRequest(req); err != nil {
		return nil, err
	}

	var profile *models.HealthProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.HealthProfile
		err := tx.Where("user_id = ?", userID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			profile = defaultProfile(userID)
		case err != nil:
			return err
		default:
			profile = &existing
		}

		changes := applyProfileUpdate(profile, req)
		if err := tx.Save(profile).Error; err != nil {
			return err
		}

		now := time.Now()
		for _, c := range changes {
			if err := tx.Create(&models.ProfileHistory{
				UserID:    userID,
				Field:     c.field,
				OldValue:  c.oldValue,
				NewValue:  c.newValue,
				ChangedAt: now,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// GetProfileHistory retrieves the change history for a user's profile
func (s *ProfileService) GetProfileHistory(ctx context.Context, userID string) ([]models.ProfileHistory, error) {
	var history []models.ProfileHistory
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("changed_at DESC, id DESC").Find(&history).Error; err != nil {
		return nil, fmt.Errorf("failed to get profile history: %w", err)
	}
	return history, nil
}

func validateProfileRequest(req *types.UpdateProfileRequest) error {
	if req.WeightKg != nil && (*req.WeightKg < MinWeightKg || *req.WeightKg > MaxWeightKg) {
		return &fitness.InputError{Field: "weight_kg", Msg: fmt.Sprintf("must be between %g and %g, got %g", MinWeightKg, MaxWeightKg, *req.WeightKg)}
	}
	if req.HeightCm != nil && (*req.HeightCm < MinHeightCm || *req.HeightCm > MaxHeightCm) {
		return &fitness.InputError{Field: "height_cm", Msg: fmt.Sprintf("must be between %g and %g, got %g", MinHeightCm, MaxHeightCm, *req.HeightCm)}
	}
	if req.Age != nil && (*req.Age < 1 || *req.Age > 120) {
		return &fitness.InputError{Field: "age", Msg: fmt.Sprintf("must be between 1 and 120, got %d", *req.Age)}
	}
	if req.DailyCalorieGoal != nil && *req.DailyCalorieGoal <= 0 {
		return &fitness.InputError{Field: "daily_calorie_goal", Msg: fmt.Sprintf("must be positive, got %d", *req.DailyCalorieGoal)}
	}
	if req.Gender != nil && !validGenders[strings.ToLower(*req.Gender)] {
		return &fitness.InputError{Field: "gender", Msg: fmt.Sprintf("must be male, female or other, got %q", *req.Gender)}
	}
	return nil
}

type profileChange struct {
	field, oldValue, newValue string
}

func applyProfileUpdate(p *models.HealthProfile, req *types.UpdateProfileRequest) []profileChange {
	var changes []profileChange
	setString := func(field string, dst *string, v *string) {
		if v != nil && *dst != *v {
			changes = append(changes, profileChange{field, *dst, *v})
			*dst = *v
		}
	}
	setFloat := func(field string, dst *float64, v *float64) {
		if v != nil && *dst != *v {
			changes = append(changes, profileChange{field, formatFloat(*dst), formatFloat(*v)})
			*dst = *v
		}
	}
	setInt := func(field string, dst *int, v *int) {
		if v != nil && *dst != *v {
			changes = append(changes, profileChange{field, strconv.Itoa(*dst), strconv.Itoa(*v)})
			*dst = *v
		}
	}

	var gender *string
	if req.Gender != nil {
		g := strings.ToLower(*req.Gender)
		gender = &g
	}

	setString("display_name", &p.DisplayName, req.DisplayName)
	setFloat("height_cm", &p.HeightCm, req.HeightCm)
	setFloat("weight_kg", &p.WeightKg, req.WeightKg)
	setString("gender", &p.Gender, gender)
	setInt("age", &p.Age, req.Age)
	setInt("daily_calorie_goal", &p.DailyCalorieGoal, req.DailyCalorieGoal)
	return changes
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
