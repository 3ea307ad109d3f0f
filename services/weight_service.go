package services

import (
	"fmt"
	"time"

	"github.com/zachhersick/macro-muse-mvp/config"
	"github.com/zachhersick/macro-muse-mvp/models"
	"github.com/zachhersick/macro-muse-mvp/utils"

	log "github.com/sirupsen/logrus"
)

type WeightLogInput struct {
	WeightKg float64    `json:"weight_kg" binding:"required"`
	LoggedAt *time.Time `json:"logged_at"`
	Notes    *string    `json:"notes"`
}

func AddWeightLog(userID uint, input WeightLogInput) (*models.WeightLog, error) {
	if input.WeightKg <= 0 {
		return nil, fmt.Errorf("weight must be positive")
	}

	loggedAt := time.Now()
	if input.LoggedAt != nil {
		loggedAt = *input.LoggedAt
	}

	entry := models.WeightLog{
		UserID:   userID,
		WeightKg: input.WeightKg,
		LoggedAt: loggedAt,
		Notes:    input.Notes,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// WeightSummary is the weight screen payload: the raw logs, the chart
// series, the two-point trend, and BMI when the profile has a height.
type WeightSummary struct {
	Logs          []models.WeightLog `json:"logs"`
	Series        []ChartPoint       `json:"series"`
	Trend         *Trend             `json:"trend"`
	CurrentWeight *float64           `json:"current_weight"`
	BMI           *float64           `json:"bmi"`
	BMICategory   string             `json:"bmi_category,omitempty"`
}

// GetWeightSummary loads the full ascending weight history and derives the
// chart series and trend from it. Ascending query order is the trend
// precondition; keep it if touching this.
func GetWeightSummary(userID uint) (*WeightSummary, error) {
	var logs []models.WeightLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("logged_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	summary := &WeightSummary{
		Logs:   logs,
		Series: WeightSeries(logs),
		Trend:  ComputeTrend(logs),
	}

	if len(logs) > 0 {
		current := logs[len(logs)-1].WeightKg
		summary.CurrentWeight = &current

		profile, err := GetProfile(userID)
		if err != nil {
			return nil, err
		}
		if profile.HeightCm != nil {
			bmi, err := utils.CalculateBMI(*profile.HeightCm, current)
			if err != nil {
				// implausible height/weight is a data issue, not a request failure
				log.Warnf("skipping BMI for user %d: %v", userID, err)
			} else {
				summary.BMI = &bmi
				summary.BMICategory = utils.BMICategory(bmi)
			}
		}
	}

	return summary, nil
}
