package service

import (
	"errors"
	"testing"

	"github.com/pageza/fittrack/backend/internal/fitness"
	"github.com/pageza/fittrack/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(f float64) *float64 { return &f }

func TestBurnServiceEstimate(t *testing.T) {
	svc := NewBurnService()

	tests := []struct {
		name     string
		req      types.BurnEstimateRequest
		wantMET  float64
		wantKcal int
		activity string
	}{
		{"by activity", types.BurnEstimateRequest{ActivityID: "deadlifts", WeightKg: 70, DurationMinutes: 30}, 10, 350, "deadlifts"},
		{"activity wins over met", types.BurnEstimateRequest{ActivityID: "squats", MET: float(3), WeightKg: 60, DurationMinutes: 20}, 9, 180, "squats"},
		{"explicit met", types.BurnEstimateRequest{MET: float(3.5), WeightKg: 60, DurationMinutes: 60}, 3.5, 210, ""},
		{"default met", types.BurnEstimateRequest{WeightKg: 70, DurationMinutes: 30}, fitness.DefaultMET, 280, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Estimate(&tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMET, resp.MET)
			assert.Equal(t, tt.wantKcal, resp.CaloriesBurned)
			if tt.activity == "" {
				assert.Nil(t, resp.Activity)
			} else {
				require.NotNil(t, resp.Activity)
				assert.Equal(t, tt.activity, resp.Activity.ID)
			}
		})
	}
}

func TestBurnServiceEstimateErrors(t *testing.T) {
	svc := NewBurnService()

	_, err := svc.Estimate(&types.BurnEstimateRequest{ActivityID: "swimming", WeightKg: 70, DurationMinutes: 30})
	assert.True(t, errors.Is(err, fitness.ErrUnknownActivity))

	_, err = svc.Estimate(&types.BurnEstimateRequest{ActivityID: "running", WeightKg: 70, DurationMinutes: 4})
	assert.True(t, errors.Is(err, fitness.ErrInvalidInput))

	_, err = svc.Estimate(&types.BurnEstimateRequest{MET: float(0), WeightKg: 70, DurationMinutes: 30})
	assert.True(t, errors.Is(err, fitness.ErrInvalidInput))

	_, err = svc.Estimate(&types.BurnEstimateRequest{ActivityID: "running", DurationMinutes: 30})
	var inputErr *fitness.InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "weight_kg", inputErr.Field)
}

func TestBurnServiceActivities(t *testing.T) {
	svc := NewBurnService()

	all, err := svc.Activities("")
	require.NoError(t, err)
	assert.Len(t, all, 10)

	yoga, err := svc.Activities("yoga")
	require.NoError(t, err)
	require.Len(t, yoga, 1)
	assert.Equal(t, "yoga-flow", yoga[0].ID)

	_, err = svc.Activities("swimming")
	assert.True(t, errors.Is(err, fitness.ErrInvalidInput))
}

func TestBurnServiceQuickWorkouts(t *testing.T) {
	workouts, err := NewBurnService().QuickWorkouts()
	require.NoError(t, err)
	require.Len(t, workouts, 3)

	assert.Equal(t, "Morning HIIT", workouts[0].Name)
	assert.Equal(t, 25.0, workouts[0].DurationMinutes)
	assert.Equal(t, 263, workouts[0].Calories) // 9*70*25/60 = 262.5
	assert.Equal(t, "High", workouts[0].Intensity)

	assert.Equal(t, "Strength Training", workouts[1].Name)
	assert.Equal(t, 315, workouts[1].Calories)

	assert.Equal(t, "Yoga Flow", workouts[2].Name)
	assert.Equal(t, 140, workouts[2].Calories)
	assert.Equal(t, "Low", workouts[2].Intensity)
}
