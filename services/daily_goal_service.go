package services

import (
	"errors"
	"fmt"

	"github.com/zachhersick/macro-muse-mvp/config"
	"github.com/zachhersick/macro-muse-mvp/models"

	"gorm.io/gorm"
)

// GetActiveGoal returns the user's active goal as macro totals. No active
// row is a normal state: the default goal is substituted and flagged so
// clients can prompt the user to set their own.
func GetActiveGoal(userID uint) (MacroTotals, bool, error) {
	var goal models.DailyGoal
	err := config.DB.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("updated_at DESC").
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultGoal(), true, nil
		}
		return MacroTotals{}, false, err
	}
	return MacroTotals{
		Calories: goal.Calories,
		Protein:  goal.Protein,
		Carbs:    goal.Carbs,
		Fat:      goal.Fat,
	}, false, nil
}

// UpsertGoals replaces the active goal. The previous active row is
// deactivated and the new one inserted in the same transaction; the partial
// unique index idx_daily_goals_one_active backs the one-active-row
// invariant, so a racing update surfaces as a unique violation here instead
// of leaving two active rows.
func UpsertGoals(userID uint, goal MacroTotals) (*models.DailyGoal, error) {
	if goal.Calories <= 0 || goal.Protein <= 0 || goal.Carbs <= 0 || goal.Fat <= 0 {
		return nil, fmt.Errorf("all goal values must be positive")
	}

	newGoal := models.DailyGoal{
		UserID:   userID,
		Calories: goal.Calories,
		Protein:  goal.Protein,
		Carbs:    goal.Carbs,
		Fat:      goal.Fat,
		IsActive: true,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.DailyGoal{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&newGoal).Error
	})
	if err != nil {
		return nil, err
	}
	return &newGoal, nil
}

// DailyProgress is the goal screen payload: the target, what was consumed
// on the day, what remains, and percentage progress per macro.
type DailyProgress struct {
	Goal          MacroTotals `json:"goal"`
	IsDefaultGoal bool        `json:"is_default_goal"`
	Consumed      MacroTotals `json:"consumed"`
	Remaining     MacroTotals `json:"remaining"`
	Progress      ProgressPct `json:"progress"`
}

// GetDailyProgress recomputes today's consumed/remaining/progress from the
// day's food logs. Derived values are never cached; every call reads the
// full day's rows.
func GetDailyProgress(userID uint) (*DailyProgress, error) {
	goal, isDefault, err := GetActiveGoal(userID)
	if err != nil {
		return nil, err
	}

	logs, err := ListFoodLogsToday(userID)
	if err != nil {
		return nil, err
	}

	consumed := ComputeConsumed(logs)
	return &DailyProgress{
		Goal:          goal,
		IsDefaultGoal: isDefault,
		Consumed:      consumed,
		Remaining:     ComputeRemaining(goal, consumed),
		Progress:      ProgressPercent(consumed, goal),
	}, nil
}
