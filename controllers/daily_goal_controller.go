package controllers

import (
	"net/http"

	"github.com/zachhersick/macro-muse-mvp/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// GetGoals returns the active goal plus today's consumed/remaining/progress.
func GetGoals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	progress, err := services.GetDailyProgress(userID)
	if err != nil {
		log.Errorf("computing daily progress for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

type UpdateGoalsInput struct {
	Calories float64 `json:"calories" binding:"required,gt=0"`
	Protein  float64 `json:"protein" binding:"required,gt=0"`
	Carbs    float64 `json:"carbs" binding:"required,gt=0"`
	Fat      float64 `json:"fat" binding:"required,gt=0"`
}

func UpdateGoals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input UpdateGoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpsertGoals(userID, services.MacroTotals{
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	})
	if err != nil {
		log.Errorf("updating goals for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}
