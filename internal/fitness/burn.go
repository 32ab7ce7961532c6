package fitness

import "math"

// MinDurationMinutes is a product policy floor, not a physical limit.
// Callers that need shorter estimates use EstimateBurnUnbounded.
const MinDurationMinutes = 5.0

// BurnEstimateInput is one calculator submission.
type BurnEstimateInput struct {
	MET             float64 `json:"met"`
	WeightKg        float64 `json:"weight_kg"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// BurnEstimateResult is the rounded kilocalories burned.
type BurnEstimateResult struct {
	CaloriesBurned int `json:"calories_burned"`
}

// EstimateBurn returns round(met * weightKg * durationMinutes / 60).
// Rounding is math.Round (half away from zero); inputs are never negative.
func EstimateBurn(met, weightKg, durationMinutes float64) (int, error) {
	if durationMinutes < MinDurationMinutes {
		return 0, invalidf("duration_minutes", "must be at least %.0f minutes, got %g", MinDurationMinutes, durationMinutes)
	}
	return EstimateBurnUnbounded(met, weightKg, durationMinutes)
}

// EstimateBurnUnbounded is EstimateBurn without the minimum duration policy.
// Inputs must still be positive.
func EstimateBurnUnbounded(met, weightKg, durationMinutes float64) (int, error) {
	if !(met > 0) || math.IsInf(met, 0) {
		return 0, invalidf("met", "must be positive, got %g", met)
	}
	if !(weightKg > 0) || math.IsInf(weightKg, 0) {
		return 0, invalidf("weight_kg", "must be positive, got %g", weightKg)
	}
	if !(durationMinutes > 0) || math.IsInf(durationMinutes, 0) {
		return 0, invalidf("duration_minutes", "must be positive, got %g", durationMinutes)
	}

	// Divide last so exact products like 1050/60 round as 17.5, not 17.4999.
	kcal := math.Round(met * weightKg * durationMinutes / 60)
	if !(kcal < float64(math.MaxInt)) {
		return 0, invalidf("result", "is too large (%g kcal)", kcal)
	}
	return int(kcal), nil
}

// Estimate runs EstimateBurn over a BurnEstimateInput.
func (in BurnEstimateInput) Estimate() (BurnEstimateResult, error) {
	kcal, err := EstimateBurn(in.MET, in.WeightKg, in.DurationMinutes)
	if err != nil {
		return BurnEstimateResult{}, err
	}
	return BurnEstimateResult{CaloriesBurned: kcal}, nil
}
