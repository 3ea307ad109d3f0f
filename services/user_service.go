package services

import (
	"errors"

	"github.com/zachhersick/macro-muse-mvp/config"
	"github.com/zachhersick/macro-muse-mvp/models"

	"gorm.io/gorm"
)

// ProfileInput carries a partial profile update. Pointer fields distinguish
// "not sent" from an explicit value, so partial updates never blank out
// fields the client did not touch.
type ProfileInput struct {
	FullName      *string  `json:"full_name"`
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	HeightCm      *float64 `json:"height_cm"`
	ActivityLevel *string  `json:"activity_level"`
	GoalType      *string  `json:"goal_type"`
}

// GetProfile fetches the user's profile. A missing row is absence, not an
// error: the caller gets an empty profile bound to the user.
func GetProfile(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Profile{UserID: userID}, nil
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies the provided fields to the profile, creating the
// row if registration somehow left it missing.
func UpdateProfile(userID uint, input ProfileInput) (*models.Profile, error) {
	var profile models.Profile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = models.Profile{UserID: userID}
	}

	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.Age != nil {
		profile.Age = input.Age
	}
	if input.Gender != nil {
		profile.Gender = *input.Gender
	}
	if input.HeightCm != nil {
		profile.HeightCm = input.HeightCm
	}
	if input.ActivityLevel != nil {
		profile.ActivityLevel = *input.ActivityLevel
	}
	if input.GoalType != nil {
		profile.GoalType = *input.GoalType
	}

	if err := config.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
