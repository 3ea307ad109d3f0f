package models

import (
    "gorm.io/gorm"
)

// DailyGoal holds a user's daily macro targets. At most one row per user
// is active at a time; goal updates deactivate the previous row instead of
// overwriting it, so past progress keeps its historical target. The partial
// unique index on user_id makes the database reject a second active row.
type DailyGoal struct {
    gorm.Model
    UserID   uint    `gorm:"not null;index;index:idx_daily_goals_one_active,unique,where:is_active" json:"user_id"`
    Calories float64 `json:"calories"` // kcal
    Protein  float64 `json:"protein"`  // g
    Carbs    float64 `json:"carbs"`    // g
    Fat      float64 `json:"fat"`      // g
    IsActive bool    `gorm:"index" json:"is_active"`
}
