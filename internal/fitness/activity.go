package fitness

// Activity categories, matching the calculator's workout type filters.
const (
	CategoryGym    = "gym"
	CategoryCardio = "cardio"
	CategoryYoga   = "yoga"
)

// DefaultMET is used when no exercise has been selected.
const DefaultMET = 8.0

// ActivityDescriptor is immutable reference data for one catalog activity.
type ActivityDescriptor struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	MET      float64 `json:"met"`
}

var catalog = []ActivityDescriptor{
	{ID: "walking", Name: "Walking", Category: CategoryCardio, MET: 3.5},
	{ID: "yoga-flow", Name: "Yoga Flow", Category: CategoryYoga, MET: 4.0},
	{ID: "strength-training", Name: "Strength Training", Category: CategoryGym, MET: 6.0},
	{ID: "cycling", Name: "Cycling", Category: CategoryCardio, MET: 7.5},
	{ID: "running", Name: "Running", Category: CategoryCardio, MET: 8.0},
	{ID: "hiit", Name: "HIIT", Category: CategoryCardio, MET: 9.0},
	{ID: "bench-press", Name: "Bench Press", Category: CategoryGym, MET: 8.0},
	{ID: "deadlifts", Name: "Deadlifts", Category: CategoryGym, MET: 10.0},
	{ID: "squats", Name: "Squats", Category: CategoryGym, MET: 9.0},
	{ID: "pull-ups", Name: "Pull-ups", Category: CategoryGym, MET: 7.0},
}

var catalogByID = func() map[string]ActivityDescriptor {
	m := make(map[string]ActivityDescriptor, len(catalog))
	for _, a := range catalog {
		m[a.ID] = a
	}
	return m
}()

// Activities returns a copy of the catalog, optionally filtered by category.
// An empty category returns every activity.
func Activities(category string) []ActivityDescriptor {
	out := make([]ActivityDescriptor, 0, len(catalog))
	for _, a := range catalog {
		if category == "" || a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// LookupActivity returns the catalog entry for id.
func LookupActivity(id string) (ActivityDescriptor, error) {
	a, ok := catalogByID[id]
	if !ok {
		return ActivityDescriptor{}, ErrUnknownActivity
	}
	return a, nil
}

// ValidCategory reports whether c names a catalog category.
func ValidCategory(c string) bool {
	switch c {
	case CategoryGym, CategoryCardio, CategoryYoga:
		return true
	}
	return false
}
