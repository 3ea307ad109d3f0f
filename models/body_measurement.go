package models

import (
    "time"

    "gorm.io/gorm"
)

// MeasurementTypes lists the accepted body measurement sites.
var MeasurementTypes = []string{
    "chest", "waist", "hips", "neck", "thigh", "bicep", "forearm", "calf",
}

// IsValidMeasurementType reports whether t is one of MeasurementTypes.
func IsValidMeasurementType(t string) bool {
    for _, m := range MeasurementTypes {
        if m == t {
            return true
        }
    }
    return false
}

type BodyMeasurement struct {
    gorm.Model
    UserID          uint      `gorm:"index;not null" json:"user_id"`
    MeasurementType string    `gorm:"not null" json:"measurement_type"`
    ValueCm         float64   `gorm:"not null" json:"value_cm"`
    LoggedAt        time.Time `gorm:"index;not null" json:"logged_at"`
    Notes           *string   `json:"notes"`
}
