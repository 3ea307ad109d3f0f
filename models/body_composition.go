package models

import (
    "time"

    "gorm.io/gorm"
)

// BodyCompositionLog stores a scale reading. Every numeric field is
// independently optional; absent values persist as NULL, never as 0, so a
// partial entry does not read back as a false zero.
type BodyCompositionLog struct {
    gorm.Model
    UserID            uint      `gorm:"index;not null" json:"user_id"`
    BodyFatPercentage *float64  `json:"body_fat_percentage"`
    MuscleMassKg      *float64  `json:"muscle_mass_kg"`
    BoneMassKg        *float64  `json:"bone_mass_kg"`
    WaterPercentage   *float64  `json:"water_percentage"`
    VisceralFatRating *int      `json:"visceral_fat_rating"`
    LoggedAt          time.Time `gorm:"index;not null" json:"logged_at"`
    Notes             *string   `json:"notes"`
}
