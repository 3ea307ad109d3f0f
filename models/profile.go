package models

import (
    "gorm.io/gorm"
)

// Profile holds the non-auth attributes of a user (display name, body
// stats, activity level). One row per user, created at registration.
type Profile struct {
    gorm.Model
    UserID        uint     `gorm:"uniqueIndex;not null" json:"user_id"`
    FullName      string   `json:"full_name"`
    Age           *int     `json:"age"`
    Gender        string   `json:"gender"`
    HeightCm      *float64 `json:"height_cm"`
    ActivityLevel string   `gorm:"default:moderate" json:"activity_level"`
    GoalType      string   `gorm:"default:maintain" json:"goal_type"`
}
