package utils

import (
	"errors"

	"backend/models"
)

// BMI computes body mass index from the profile's metrics.
func BMI(p models.Profile) (float64, error) {
	if p.HeightCm <= 0 || p.WeightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if p.HeightCm < 50 || p.HeightCm > 250 || p.WeightKg < 10 || p.WeightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := p.HeightCm / 100.0 // to meters
	return p.WeightKg / (h * h), nil
}

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
