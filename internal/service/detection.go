package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/fittrack/backend/internal/fitness"
	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
	"gorm.io/gorm"
)

const (
	// DetectionModel names the detector reported in every result.
	DetectionModel = "best.pt"

	detectionSuccessMessage = "Food detection completed successfully"
)

// FoodUpload is one uploaded photo.
type FoodUpload struct {
	UserID      string
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

// DetectionService analyses food photos. The detector is a stand-in that
// reports the same three foods for every image.
type DetectionService struct {
	db     *gorm.DB
	images ImageStore
	delay  time.Duration
	detect func() types.DetectionResult
}

var _ IDetectionService = (*DetectionService)(nil)

// NewDetectionService creates a DetectionService. db and images may be nil,
// which turns off persistence and photo storage respectively.
func NewDetectionService(db *gorm.DB, images ImageStore, delay time.Duration) *DetectionService {
	return &DetectionService{
		db:     db,
		images: images,
		delay:  delay,
		detect: mockDetection,
	}
}

// mockDetection returns a fresh copy of the canned detector output.
func mockDetection() types.DetectionResult {
	return types.DetectionResult{
		DetectedFoods: []types.DetectedFood{
			{Name: "Apple", Confidence: 0.92, Calories: 95, BBox: [4]int{100, 50, 80, 80}},
			{Name: "Nuts", Confidence: 0.87, Calories: 180, BBox: [4]int{200, 100, 120, 60}},
			{Name: "Milk", Confidence: 0.78, Calories: 120, BBox: [4]int{50, 150, 150, 100}},
		},
		TotalCalories:  395,
		Nutrition:      types.Nutrition{Carbs: 45, Protein: 12, Fat: 18},
		ModelUsed:      DetectionModel,
		ProcessingTime: "2.3s",
	}
}

// DetectFood runs the detector over the upload. Photo storage and the
// detection record are best effort: failures are logged and the result is
// still returned.
func (s *DetectionService) DetectFood(ctx context.Context, upload *FoodUpload) (*types.DetectionResponse, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, fmt.Errorf("detection interrupted: %w", err)
	}

	result := s.detect()
	result.ImageSize = upload.Size
	result.ImageType = upload.ContentType

	resp := &types.DetectionResponse{
		Success: true,
		Message: detectionSuccessMessage,
	}

	agg, err := fitness.AggregateWithBreakdown(detectedItems(result.DetectedFoods), fitness.MacroBreakdown{
		Carbs:   result.Nutrition.Carbs,
		Protein: result.Nutrition.Protein,
		Fat:     result.Nutrition.Fat,
	}, result.TotalCalories, fitness.DefaultTolerance)
	var inconsistent *fitness.InconsistentDataError
	switch {
	case errors.As(err, &inconsistent):
		log.Printf("[DetectionService] Warning: %v", inconsistent)
		resp.Warnings = append(resp.Warnings, inconsistent.Error())
	case err != nil:
		return nil, fmt.Errorf("failed to aggregate detection: %w", err)
	}
	result.TotalCalories = agg.TotalCalories

	if s.images != nil && len(upload.Data) > 0 {
		key := fmt.Sprintf("food-images/%s%s", uuid.New().String(), strings.ToLower(filepath.Ext(upload.FileName)))
		url, err := s.images.Upload(ctx, key, upload.ContentType, upload.Data)
		if err != nil {
			log.Printf("[DetectionService] Failed to store image %q: %v", upload.FileName, err)
		} else {
			result.ImageURL = url
		}
	}

	resp.Results = result
	resp.DatabaseID = s.record(ctx, upload, result)
	return resp, nil
}

func (s *DetectionService) record(ctx context.Context, upload *FoodUpload, result types.DetectionResult) *string {
	if s.db == nil {
		return nil
	}

	payload, err := models.NewJSON(result)
	if err != nil {
		log.Printf("[DetectionService] Failed to encode detection: %v", err)
		return nil
	}

	rec := &models.FoodDetection{
		UserID:    upload.UserID,
		ImageName: upload.FileName,
		ImageSize: upload.Size,
		ImageType: upload.ContentType,
		ImageURL:  result.ImageURL,
		Results:   payload,
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		log.Printf("[DetectionService] Failed to save detection: %v", err)
		return nil
	}

	id := rec.ID.String()
	return &id
}

func detectedItems(foods []types.DetectedFood) []fitness.FoodItem {
	items := make([]fitness.FoodItem, len(foods))
	for i, f := range foods {
		items[i] = fitness.FoodItem{
			Name:       f.Name,
			Calories:   f.Calories,
			Confidence: f.Confidence,
			BBox:       f.BBox[:],
		}
	}
	return items
}
