package services

import (
	"errors"

	"github.com/zachhersick/macro-muse-mvp/config"
	"github.com/zachhersick/macro-muse-mvp/models"
	"github.com/zachhersick/macro-muse-mvp/utils"

	"gorm.io/gorm"
)

// RegisterUser creates the auth user plus its profile and a default active
// goal, so the dashboard has a target to render from the first login.
func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:    email,
			Password: hashedPassword,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile := models.Profile{
			UserID:   user.ID,
			FullName: fullName,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		def := DefaultGoal()
		goal := models.DailyGoal{
			UserID:   user.ID,
			Calories: def.Calories,
			Protein:  def.Protein,
			Carbs:    def.Carbs,
			Fat:      def.Fat,
			IsActive: true,
		}
		return tx.Create(&goal).Error
	})
}

// AuthenticateUser checks credentials and returns a signed token.
func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}
