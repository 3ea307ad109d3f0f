package services

import (
	"strings"

	"github.com/zachhersick/macro-muse-mvp/config"
	"github.com/zachhersick/macro-muse-mvp/models"
)

// MatchesFoodQuery reports whether a catalog name matches the search box
// input: case-insensitive substring, surrounding whitespace ignored. An
// empty query matches everything (the picker's initial screen).
func MatchesFoodQuery(name, query string) bool {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(trimmed))
}

// FilterFoodCatalog keeps the items matching the query, preserving order.
func FilterFoodCatalog(items []models.FoodItem, query string) []models.FoodItem {
	matched := make([]models.FoodItem, 0, len(items))
	for _, it := range items {
		if MatchesFoodQuery(it.Name, query) {
			matched = append(matched, it)
		}
	}
	return matched
}

// SearchFoods backs the food picker. The catalog is a small seeded table,
// so it is read once ordered by name and filtered in memory; the match
// semantics live in FilterFoodCatalog.
func SearchFoods(query string) ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := config.DB.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return FilterFoodCatalog(items, query), nil
}
