package models

import (
    "time"

    "gorm.io/gorm"
)

// FoodLog is one logged food entry with its nutrition snapshot.
// Entries are immutable once created; there are no update/delete routes.
type FoodLog struct {
    gorm.Model
    UserID      uint      `gorm:"index;not null" json:"user_id"`
    FoodName    string    `gorm:"not null" json:"food_name"`
    Calories    float64   `json:"calories"` // kcal
    Protein     float64   `json:"protein"`  // g
    Carbs       float64   `json:"carbs"`    // g
    Fat         float64   `json:"fat"`      // g
    ServingSize *string   `json:"serving_size"`
    MealType    string    `gorm:"default:snack" json:"meal_type"`
    LoggedAt    time.Time `gorm:"index;not null" json:"logged_at"`
}
