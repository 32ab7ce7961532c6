package fitness

import "math"

// DefaultTolerance requires supplied and recomputed totals to match exactly.
const DefaultTolerance = 0

// FoodItem is a detected or logged food. Macro grams are optional; nil means
// the source did not provide them. Confidence is informational only.
type FoodItem struct {
	Name       string  `json:"name"`
	Calories   int     `json:"calories"`
	Confidence float64 `json:"confidence,omitempty"`
	CarbsG     *int    `json:"carbs_g,omitempty"`
	ProteinG   *int    `json:"protein_g,omitempty"`
	FatG       *int    `json:"fat_g,omitempty"`
	BBox       []int   `json:"bbox,omitempty"`
}

// HasMacros reports whether any macro gram field is set.
func (f FoodItem) HasMacros() bool {
	return f.CarbsG != nil || f.ProteinG != nil || f.FatG != nil
}

// MacroBreakdown holds carbs/protein/fat. Computed breakdowns are percentages;
// supplied breakdowns are passed through as given.
type MacroBreakdown struct {
	Carbs   int `json:"carbs"`
	Protein int `json:"protein"`
	Fat     int `json:"fat"`
}

// MealAggregate is the result of aggregating one meal.
type MealAggregate struct {
	TotalCalories  int                    `json:"total_calories"`
	Macros         MacroBreakdown         `json:"macros"`
	MacrosSupplied bool                   `json:"macros_supplied"`
	Inconsistency  *InconsistentDataError `json:"inconsistency,omitempty"`
}

// Aggregate sums calories and derives macro percentages from item grams.
// An empty list yields a zero aggregate. Percentages are all zero when no
// item carries grams or the grams sum to zero.
func Aggregate(items []FoodItem) (MealAggregate, error) {
	sums, err := sumItems(items)
	if err != nil {
		return MealAggregate{}, err
	}
	macros, err := percentages(sums.carbs, sums.protein, sums.fat)
	if err != nil {
		return MealAggregate{}, err
	}
	return MealAggregate{
		TotalCalories: sums.calories,
		Macros:        macros,
	}, nil
}

// AggregateWithBreakdown passes a pre-computed macro breakdown through
// unchanged and recomputes the calorie total from items. When suppliedTotal
// differs from the recomputed sum by more than tolerance, the aggregate still
// carries the recomputed total and the returned error is an
// *InconsistentDataError; callers treat that as a warning.
func AggregateWithBreakdown(items []FoodItem, supplied MacroBreakdown, suppliedTotal, tolerance int) (MealAggregate, error) {
	if tolerance < 0 {
		return MealAggregate{}, invalidf("tolerance", "must not be negative, got %d", tolerance)
	}
	if suppliedTotal < 0 {
		return MealAggregate{}, invalidf("total_calories", "must not be negative, got %d", suppliedTotal)
	}
	sums, err := sumItems(items)
	if err != nil {
		return MealAggregate{}, err
	}
	total := sums.calories

	agg := MealAggregate{
		TotalCalories:  total,
		Macros:         supplied,
		MacrosSupplied: true,
	}
	diff := suppliedTotal - total
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance {
		agg.Inconsistency = &InconsistentDataError{
			Supplied:   suppliedTotal,
			Recomputed: total,
			Tolerance:  tolerance,
		}
		return agg, agg.Inconsistency
	}
	return agg, nil
}

type itemSums struct {
	calories, carbs, protein, fat int
}

// sumItems validates every item and totals calories and macro grams. Negative
// values and sums that would overflow int are rejected.
func sumItems(items []FoodItem) (itemSums, error) {
	var sums itemSums
	for i, it := range items {
		for _, f := range []struct {
			field string
			v     *int
			acc   *int
		}{
			{"calories", &it.Calories, &sums.calories},
			{"carbs_g", it.CarbsG, &sums.carbs},
			{"protein_g", it.ProteinG, &sums.protein},
			{"fat_g", it.FatG, &sums.fat},
		} {
			if f.v == nil {
				continue
			}
			if *f.v < 0 {
				return itemSums{}, invalidf(f.field, "of item %d (%q) must not be negative, got %d", i, it.Name, *f.v)
			}
			if *f.acc > math.MaxInt-*f.v {
				return itemSums{}, invalidf(f.field, "total overflows at item %d (%q)", i, it.Name)
			}
			*f.acc += *f.v
		}
	}
	return sums, nil
}

func percentages(carbs, protein, fat int) (MacroBreakdown, error) {
	if carbs > math.MaxInt-protein || carbs+protein > math.MaxInt-fat {
		return MacroBreakdown{}, invalidf("grams", "total overflows")
	}
	totalGrams := carbs + protein + fat
	if totalGrams <= 0 {
		return MacroBreakdown{}, nil
	}
	pct := func(g int) int {
		return int(math.Round(100 * float64(g) / float64(totalGrams)))
	}
	return MacroBreakdown{
		Carbs:   pct(carbs),
		Protein: pct(protein),
		Fat:     pct(fat),
	}, nil
}
