package fitness

// BMI returns weight / height² with height given in centimeters.
func BMI(heightCm, weightKg float64) (float64, error) {
	if !(heightCm > 0) {
		return 0, invalidf("height_cm", "must be positive, got %g", heightCm)
	}
	if !(weightKg > 0) {
		return 0, invalidf("weight_kg", "must be positive, got %g", weightKg)
	}
	h := heightCm / 100
	return weightKg / (h * h), nil
}

// BMICategory names the WHO band for bmi.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
