package services

import (
	"testing"

	"github.com/zachhersick/macro-muse-mvp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []models.FoodItem {
	return []models.FoodItem{
		{Name: "Banana", Calories: 89},
		{Name: "Brown Rice", Calories: 111},
		{Name: "Chicken Breast", Calories: 165},
		{Name: "Greek Yogurt", Calories: 59},
	}
}

func TestMatchesFoodQuery(t *testing.T) {
	assert.True(t, MatchesFoodQuery("Banana", "ban"))
	assert.True(t, MatchesFoodQuery("Banana", "NANA"), "match is case-insensitive")
	assert.True(t, MatchesFoodQuery("Brown Rice", "  rice "), "surrounding whitespace is ignored")
	assert.False(t, MatchesFoodQuery("Banana", "rice"))

	// empty and whitespace-only queries match everything
	assert.True(t, MatchesFoodQuery("Banana", ""))
	assert.True(t, MatchesFoodQuery("Banana", "   "))
}

func TestFilterFoodCatalogSubstring(t *testing.T) {
	got := FilterFoodCatalog(catalog(), "re")

	require.Len(t, got, 3)
	assert.Equal(t, "Brown Rice", got[0].Name)
	assert.Equal(t, "Chicken Breast", got[1].Name)
	assert.Equal(t, "Greek Yogurt", got[2].Name)
}

func TestFilterFoodCatalogEmptyQueryListsAll(t *testing.T) {
	got := FilterFoodCatalog(catalog(), "")
	assert.Equal(t, catalog(), got, "empty query returns the whole catalog in order")
}

func TestFilterFoodCatalogNoMatch(t *testing.T) {
	got := FilterFoodCatalog(catalog(), "pizza")
	assert.Empty(t, got)
}

func TestFilterFoodCatalogEmptyCatalog(t *testing.T) {
	assert.Empty(t, FilterFoodCatalog(nil, "banana"))
}
