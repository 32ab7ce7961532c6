package service

import (
	"fmt"

	"github.com/pageza/fittrack/backend/internal/fitness"
	"github.com/pageza/fittrack/backend/internal/types"
)

// DefaultWeightKg is used when the user has not entered a weight.
const DefaultWeightKg = 70.0

type quickWorkout struct {
	name       string
	activityID string
	minutes    float64
	intensity  string
}

var quickWorkouts = []quickWorkout{
	{name: "Morning HIIT", activityID: "hiit", minutes: 25, intensity: "High"},
	{name: "Strength Training", activityID: "strength-training", minutes: 45, intensity: "Medium"},
	{name: "Yoga Flow", activityID: "yoga-flow", minutes: 30, intensity: "Low"},
}

// BurnService serves the calorie burn calculator.
type BurnService struct{}

var _ IBurnService = (*BurnService)(nil)

func NewBurnService() *BurnService {
	return &BurnService{}
}

// Activities lists the catalog, filtered by category when one is given.
func (s *BurnService) Activities(category string) ([]fitness.ActivityDescriptor, error) {
	if category != "" && !fitness.ValidCategory(category) {
		return nil, &fitness.InputError{Field: "category", Msg: fmt.Sprintf("must be gym, cardio or yoga, got %q", category)}
	}
	return fitness.Activities(category), nil
}

// Estimate resolves the MET from the activity id, the explicit MET, or the
// default factor, in that order, and estimates the burn.
func (s *BurnService) Estimate(req *types.BurnEstimateRequest) (*types.BurnEstimateResponse, error) {
	resp := &types.BurnEstimateResponse{
		MET:             fitness.DefaultMET,
		WeightKg:        req.WeightKg,
		DurationMinutes: req.DurationMinutes,
	}

	switch {
	case req.ActivityID != "":
		activity, err := fitness.LookupActivity(req.ActivityID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, req.ActivityID)
		}
		resp.Activity = &activity
		resp.MET = activity.MET
	case req.MET != nil:
		resp.MET = *req.MET
	}

	kcal, err := fitness.EstimateBurn(resp.MET, req.WeightKg, req.DurationMinutes)
	if err != nil {
		return nil, err
	}
	resp.CaloriesBurned = kcal
	return resp, nil
}

// QuickWorkouts returns the preset workouts with calories at DefaultWeightKg.
func (s *BurnService) QuickWorkouts() ([]types.QuickWorkout, error) {
	out := make([]types.QuickWorkout, 0, len(quickWorkouts))
	for _, w := range quickWorkouts {
		activity, err := fitness.LookupActivity(w.activityID)
		if err != nil {
			return nil, fmt.Errorf("quick workout %s: %w", w.name, err)
		}
		kcal, err := fitness.EstimateBurn(activity.MET, DefaultWeightKg, w.minutes)
		if err != nil {
			return nil, fmt.Errorf("quick workout %s: %w", w.name, err)
		}
		out = append(out, types.QuickWorkout{
			Name:            w.name,
			ActivityID:      w.activityID,
			DurationMinutes: w.minutes,
			Intensity:       w.intensity,
			Calories:        kcal,
		})
	}
	return out, nil
}
