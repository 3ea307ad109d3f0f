package services

import (
	"fmt"
	"time"

	"github.com/zachhersick/macro-muse-mvp/config"
	"github.com/zachhersick/macro-muse-mvp/models"
)

// BodyCompositionInput is a new scale reading. All numeric fields are
// optional; fields left nil are inserted as NULL so a partial entry never
// writes false zeros.
type BodyCompositionInput struct {
	BodyFatPercentage *float64   `json:"body_fat_percentage"`
	MuscleMassKg      *float64   `json:"muscle_mass_kg"`
	BoneMassKg        *float64   `json:"bone_mass_kg"`
	WaterPercentage   *float64   `json:"water_percentage"`
	VisceralFatRating *int       `json:"visceral_fat_rating"`
	LoggedAt          *time.Time `json:"logged_at"`
	Notes             *string    `json:"notes"`
}

// HasAnyValue reports whether at least one numeric field is populated.
// The composition form's submit stays disabled otherwise.
func (in BodyCompositionInput) HasAnyValue() bool {
	return in.BodyFatPercentage != nil ||
		in.MuscleMassKg != nil ||
		in.BoneMassKg != nil ||
		in.WaterPercentage != nil ||
		in.VisceralFatRating != nil
}

func AddBodyComposition(userID uint, input BodyCompositionInput) (*models.BodyCompositionLog, error) {
	if !input.HasAnyValue() {
		return nil, fmt.Errorf("at least one measurement value is required")
	}

	loggedAt := time.Now()
	if input.LoggedAt != nil {
		loggedAt = *input.LoggedAt
	}

	entry := models.BodyCompositionLog{
		UserID:            userID,
		BodyFatPercentage: input.BodyFatPercentage,
		MuscleMassKg:      input.MuscleMassKg,
		BoneMassKg:        input.BoneMassKg,
		WaterPercentage:   input.WaterPercentage,
		VisceralFatRating: input.VisceralFatRating,
		LoggedAt:          loggedAt,
		Notes:             input.Notes,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListBodyCompositions returns the full ascending history plus its chart
// series.
func ListBodyCompositions(userID uint) ([]models.BodyCompositionLog, []CompositionPoint, error) {
	var logs []models.BodyCompositionLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("logged_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, nil, err
	}
	return logs, CompositionSeries(logs), nil
}

type BodyMeasurementInput struct {
	MeasurementType string     `json:"measurement_type" binding:"required"`
	ValueCm         float64    `json:"value_cm" binding:"required"`
	LoggedAt        *time.Time `json:"logged_at"`
	Notes           *string    `json:"notes"`
}

func AddBodyMeasurement(userID uint, input BodyMeasurementInput) (*models.BodyMeasurement, error) {
	if !models.IsValidMeasurementType(input.MeasurementType) {
		return nil, fmt.Errorf("unknown measurement type %q", input.MeasurementType)
	}
	if input.ValueCm <= 0 {
		return nil, fmt.Errorf("value must be positive")
	}

	loggedAt := time.Now()
	if input.LoggedAt != nil {
		loggedAt = *input.LoggedAt
	}

	entry := models.BodyMeasurement{
		UserID:          userID,
		MeasurementType: input.MeasurementType,
		ValueCm:         input.ValueCm,
		LoggedAt:        loggedAt,
		Notes:           input.Notes,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// MeasurementGroup is one site's chart series with its latest value pulled
// out for the summary cards.
type MeasurementGroup struct {
	Series []ChartPoint `json:"series"`
	Latest *float64     `json:"latest"`
}

// ListBodyMeasurements returns per-site groups in chronological order.
func ListBodyMeasurements(userID uint) (map[string]MeasurementGroup, error) {
	var rows []models.BodyMeasurement
	err := config.DB.
		Where("user_id = ?", userID).
		Order("logged_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	grouped := GroupByMeasurementType(rows)
	out := make(map[string]MeasurementGroup, len(grouped))
	for site, series := range grouped {
		g := MeasurementGroup{Series: series}
		if len(series) > 0 {
			g.Latest = series[len(series)-1].Value
		}
		out[site] = g
	}
	return out, nil
}
