package types

// DetectedFood is one food found in an uploaded photo. BBox is x, y, width, height in pixels.
type DetectedFood struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Calories   int     `json:"calories"`
	BBox       [4]int  `json:"bbox"`
}

// Nutrition is the macro breakdown reported for a detection.
type Nutrition struct {
	Carbs   int `json:"carbs"`
	Protein int `json:"protein"`
	Fat     int `json:"fat"`
}

// DetectionResult is the "results" object of a detection response.
type DetectionResult struct {
	DetectedFoods  []DetectedFood `json:"detectedFoods"`
	TotalCalories  int            `json:"totalCalories"`
	Nutrition      Nutrition      `json:"nutrition"`
	ModelUsed      string         `json:"modelUsed"`
	ProcessingTime string         `json:"processingTime"`
	ImageSize      int64          `json:"imageSize"`
	ImageType      string         `json:"imageType"`
	ImageURL       string         `json:"imageUrl,omitempty"`
}

// DetectionResponse is the envelope returned by the detect-food endpoint.
type DetectionResponse struct {
	Success    bool            `json:"success"`
	Results    DetectionResult `json:"results"`
	Message    string          `json:"message"`
	DatabaseID *string         `json:"database_id"`
	Warnings   []string        `json:"warnings,omitempty"`
}
