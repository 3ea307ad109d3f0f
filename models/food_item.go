package models

import "gorm.io/gorm"

// FoodItem is a catalog entry backing the food search screen.
// Nutrition values are per the listed serving size.
type FoodItem struct {
    gorm.Model
    Name        string  `gorm:"uniqueIndex;not null" json:"name"`
    Calories    float64 `json:"calories"`
    Protein     float64 `json:"protein"`
    Carbs       float64 `json:"carbs"`
    Fat         float64 `json:"fat"`
    ServingSize string  `json:"serving_size"`
}
