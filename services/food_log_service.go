package services

import (
	"fmt"
	"time"

	"github.com/zachhersick/macro-muse-mvp/config"
	"github.com/zachhersick/macro-muse-mvp/models"
)

// FoodLogInput is a new food entry. The nutrition fields are required but
// may legitimately be zero (water, black coffee), so they arrive as
// pointers and are range-checked here instead of via binding tags.
type FoodLogInput struct {
	FoodName    string     `json:"food_name" binding:"required"`
	Calories    *float64   `json:"calories" binding:"required"`
	Protein     *float64   `json:"protein" binding:"required"`
	Carbs       *float64   `json:"carbs" binding:"required"`
	Fat         *float64   `json:"fat" binding:"required"`
	ServingSize *string    `json:"serving_size"`
	MealType    string     `json:"meal_type"`
	LoggedAt    *time.Time `json:"logged_at"`
}

// AddFoodLog validates and inserts one food entry. Entries are immutable
// after this point.
func AddFoodLog(userID uint, input FoodLogInput) (*models.FoodLog, error) {
	for name, v := range map[string]*float64{
		"calories": input.Calories,
		"protein":  input.Protein,
		"carbs":    input.Carbs,
		"fat":      input.Fat,
	} {
		if v == nil {
			return nil, fmt.Errorf("%s is required", name)
		}
		if *v < 0 {
			return nil, fmt.Errorf("%s must not be negative", name)
		}
	}

	mealType := input.MealType
	if mealType == "" {
		mealType = "snack"
	}

	loggedAt := time.Now()
	if input.LoggedAt != nil {
		loggedAt = *input.LoggedAt
	}

	entry := models.FoodLog{
		UserID:      userID,
		FoodName:    input.FoodName,
		Calories:    *input.Calories,
		Protein:     *input.Protein,
		Carbs:       *input.Carbs,
		Fat:         *input.Fat,
		ServingSize: input.ServingSize,
		MealType:    mealType,
		LoggedAt:    loggedAt,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListFoodLogsForDay returns the entries whose logged_at falls inside the
// calendar day of t, newest first (diary order).
func ListFoodLogsForDay(userID uint, t time.Time) ([]models.FoodLog, error) {
	start, end := DayWindow(t)

	var logs []models.FoodLog
	err := config.DB.
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Order("logged_at DESC").
		Find(&logs).Error
	return logs, err
}

func ListFoodLogsToday(userID uint) ([]models.FoodLog, error) {
	return ListFoodLogsForDay(userID, time.Now())
}
