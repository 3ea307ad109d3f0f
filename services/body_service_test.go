package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyCompositionInputHasAnyValue(t *testing.T) {
	assert.False(t, BodyCompositionInput{}.HasAnyValue())

	bf := 15.5
	assert.True(t, BodyCompositionInput{BodyFatPercentage: &bf}.HasAnyValue())

	vf := 8
	assert.True(t, BodyCompositionInput{VisceralFatRating: &vf}.HasAnyValue())

	notes := "after workout"
	assert.False(t, BodyCompositionInput{Notes: &notes}.HasAnyValue(),
		"notes alone do not count as a measurement")
}

// A submission carrying only body_fat_percentage must leave every other
// numeric field nil, so the insert writes NULLs rather than zeros.
func TestBodyCompositionInputPartialDecode(t *testing.T) {
	var input BodyCompositionInput
	err := json.Unmarshal([]byte(`{"body_fat_percentage": 15.5}`), &input)
	require.NoError(t, err)

	require.NotNil(t, input.BodyFatPercentage)
	assert.Equal(t, 15.5, *input.BodyFatPercentage)
	assert.Nil(t, input.MuscleMassKg)
	assert.Nil(t, input.BoneMassKg)
	assert.Nil(t, input.WaterPercentage)
	assert.Nil(t, input.VisceralFatRating)
	assert.True(t, input.HasAnyValue())
}

func TestFoodLogInputDecodeAllowsZeroMacros(t *testing.T) {
	var input FoodLogInput
	err := json.Unmarshal([]byte(`{"food_name":"Black Coffee","calories":2,"protein":0,"carbs":0,"fat":0}`), &input)
	require.NoError(t, err)

	require.NotNil(t, input.Fat)
	assert.Equal(t, 0.0, *input.Fat) // explicit zero, distinct from absent
	assert.Empty(t, input.MealType)
}
