package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pageza/fittrack/backend/internal/fitness"
	"github.com/pageza/fittrack/backend/internal/mocks"
	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/testhelpers"
	"github.com/pageza/fittrack/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testUpload() *FoodUpload {
	return &FoodUpload{
		FileName:    "Lunch.JPG",
		ContentType: "image/jpeg",
		Size:        4,
		Data:        []byte{0xff, 0xd8, 0xff, 0xe0},
	}
}

func TestDetectFoodPayload(t *testing.T) {
	svc := NewDetectionService(nil, nil, 0)

	resp, err := svc.DetectFood(context.Background(), testUpload())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Food detection completed successfully", resp.Message)
	assert.Nil(t, resp.DatabaseID)
	assert.Empty(t, resp.Warnings)

	r := resp.Results
	require.Len(t, r.DetectedFoods, 3)
	assert.Equal(t, "Apple", r.DetectedFoods[0].Name)
	assert.Equal(t, 0.92, r.DetectedFoods[0].Confidence)
	assert.Equal(t, [4]int{100, 50, 80, 80}, r.DetectedFoods[0].BBox)
	assert.Equal(t, "Nuts", r.DetectedFoods[1].Name)
	assert.Equal(t, 180, r.DetectedFoods[1].Calories)
	assert.Equal(t, "Milk", r.DetectedFoods[2].Name)
	assert.Equal(t, [4]int{50, 150, 150, 100}, r.DetectedFoods[2].BBox)

	assert.Equal(t, 395, r.TotalCalories)
	assert.Equal(t, 45, r.Nutrition.Carbs)
	assert.Equal(t, 12, r.Nutrition.Protein)
	assert.Equal(t, 18, r.Nutrition.Fat)
	assert.Equal(t, "best.pt", r.ModelUsed)
	assert.Equal(t, "2.3s", r.ProcessingTime)
	assert.Equal(t, int64(4), r.ImageSize)
	assert.Equal(t, "image/jpeg", r.ImageType)
}

func TestDetectFoodIgnoresImageContent(t *testing.T) {
	svc := NewDetectionService(nil, nil, 0)

	a, err := svc.DetectFood(context.Background(), testUpload())
	require.NoError(t, err)
	b, err := svc.DetectFood(context.Background(), &FoodUpload{FileName: "x.png", ContentType: "image/png", Size: 1, Data: []byte{1}})
	require.NoError(t, err)

	assert.Equal(t, a.Results.DetectedFoods, b.Results.DetectedFoods)
	assert.Equal(t, a.Results.TotalCalories, b.Results.TotalCalories)

	// callers cannot corrupt the canned payload
	a.Results.DetectedFoods[0].Name = "Pear"
	assert.Equal(t, "Apple", mockDetection().DetectedFoods[0].Name)
}

func TestDetectFoodRecordsDetection(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewDetectionService(db, nil, 0)

	resp, err := svc.DetectFood(context.Background(), testUpload())
	require.NoError(t, err)
	require.NotNil(t, resp.DatabaseID)

	var rec models.FoodDetection
	require.NoError(t, db.First(&rec, "id = ?", *resp.DatabaseID).Error)
	assert.Equal(t, models.AnonymousUserID, rec.UserID)
	assert.Equal(t, "Lunch.JPG", rec.ImageName)
	assert.Equal(t, int64(4), rec.ImageSize)
	assert.Contains(t, string(rec.Results), `"modelUsed":"best.pt"`)
	assert.Contains(t, string(rec.Results), `"totalCalories":395`)

	upload := testUpload()
	upload.UserID = "user-42"
	resp, err = svc.DetectFood(context.Background(), upload)
	require.NoError(t, err)
	require.NoError(t, db.First(&rec, "id = ?", *resp.DatabaseID).Error)
	assert.Equal(t, "user-42", rec.UserID)
}

func TestDetectFoodStoresImage(t *testing.T) {
	store := new(mocks.MockImageStore)
	upload := testUpload()
	store.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "food-images/") && strings.HasSuffix(key, ".jpg")
	}), "image/jpeg", upload.Data).Return("https://bucket.example/food-images/a.jpg", nil)

	svc := NewDetectionService(nil, store, 0)
	resp, err := svc.DetectFood(context.Background(), upload)
	require.NoError(t, err)

	assert.Equal(t, "https://bucket.example/food-images/a.jpg", resp.Results.ImageURL)
	store.AssertExpectations(t)
}

func TestDetectFoodImageStoreFailureIsNotFatal(t *testing.T) {
	store := new(mocks.MockImageStore)
	store.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("access denied"))

	svc := NewDetectionService(nil, store, 0)
	resp, err := svc.DetectFood(context.Background(), testUpload())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Results.ImageURL)
}

func TestDetectFoodHonoursCancellation(t *testing.T) {
	svc := NewDetectionService(nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := svc.DetectFood(ctx, testUpload())
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Less(t, time.Since(start), time.Second)
}

func TestDetectFoodDelay(t *testing.T) {
	svc := NewDetectionService(nil, nil, 20*time.Millisecond)

	start := time.Now()
	_, err := svc.DetectFood(context.Background(), testUpload())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestDetectFoodWarnsOnInconsistentTotal(t *testing.T) {
	svc := NewDetectionService(testhelpers.SetupTestDB(t), nil, 0)
	svc.detect = func() types.DetectionResult {
		r := mockDetection()
		r.TotalCalories = 420
		return r
	}

	resp, err := svc.DetectFood(context.Background(), testUpload())
	require.NoError(t, err)

	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "supplied total 420 differs from recomputed total 395")
	assert.Equal(t, 395, resp.Results.TotalCalories)
	assert.Equal(t, types.Nutrition{Carbs: 45, Protein: 12, Fat: 18}, resp.Results.Nutrition)
	require.NotNil(t, resp.DatabaseID)
}

func TestDetectFoodRejectsInvalidDetectorOutput(t *testing.T) {
	svc := NewDetectionService(nil, nil, 0)
	svc.detect = func() types.DetectionResult {
		r := mockDetection()
		r.DetectedFoods[1].Calories = -180
		return r
	}

	resp, err := svc.DetectFood(context.Background(), testUpload())
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, fitness.ErrInvalidInput)
}
