package models

import (
    "time"

    "gorm.io/gorm"
)

type WeightLog struct {
    gorm.Model
    UserID   uint      `gorm:"index;not null" json:"user_id"`
    WeightKg float64   `gorm:"not null" json:"weight_kg"`
    LoggedAt time.Time `gorm:"index;not null" json:"logged_at"`
    Notes    *string   `json:"notes"`
}
