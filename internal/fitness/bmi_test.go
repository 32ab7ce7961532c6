package fitness

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	bmi, err := BMI(170, 70)
	require.NoError(t, err)
	assert.InDelta(t, 24.22, bmi, 0.01)
	assert.Equal(t, "Normal weight", BMICategory(bmi))

	_, err = BMI(0, 70)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	_, err = BMI(170, -1)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestBMICategory(t *testing.T) {
	cases := map[float64]string{
		17.0: "Underweight",
		18.5: "Normal weight",
		27.3: "Overweight",
		30.0: "Obesity class I",
		36.1: "Obesity class II",
		45.0: "Obesity class III",
	}
	for bmi, want := range cases {
		assert.Equal(t, want, BMICategory(bmi), "bmi %.1f", bmi)
	}
}
