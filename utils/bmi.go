package utils

import "errors"

// Plausibility bounds for scale/stadiometer input. Values outside these are
// almost certainly unit mistakes (meters vs centimeters, lbs vs kg).
const (
	minHeightCm = 50
	maxHeightCm = 250
	minWeightKg = 10
	maxWeightKg = 400
)

var errImplausibleMetrics = errors.New("height/weight out of plausible range")

// CalculateBMI computes body mass index from height in centimeters and
// weight in kilograms, rejecting non-positive or implausible input so the
// weight summary never shows a nonsense number.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	if heightCm < minHeightCm || heightCm > maxHeightCm ||
		weightKg < minWeightKg || weightKg > maxWeightKg {
		return 0, errImplausibleMetrics
	}

	heightM := heightCm / 100.0
	return weightKg / (heightM * heightM), nil
}

// BMICategory maps a BMI value to the WHO classification label shown next
// to the current weight.
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
