package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 75)
	require.NoError(t, err)
	assert.InDelta(t, 23.15, bmi, 0.01)
}

func TestCalculateBMIRejectsBadInput(t *testing.T) {
	_, err := CalculateBMI(0, 75)
	assert.Error(t, err)

	_, err = CalculateBMI(180, -5)
	assert.Error(t, err)

	_, err = CalculateBMI(300, 75)
	assert.Error(t, err)

	_, err = CalculateBMI(180, 500)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal weight", BMICategory(22.0))
	assert.Equal(t, "Overweight", BMICategory(27.5))
	assert.Equal(t, "Obesity class I", BMICategory(32.0))
	assert.Equal(t, "Obesity class III", BMICategory(41.0))
}
