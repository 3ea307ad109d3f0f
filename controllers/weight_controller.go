package controllers

import (
	"net/http"

	"github.com/zachhersick/macro-muse-mvp/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func AddWeightLog(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input services.WeightLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.AddWeightLog(userID, input)
	if err != nil {
		log.Errorf("adding weight log for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetWeightSummary returns the ascending history, chart series, two-point
// trend and BMI. An empty history is a normal "no data yet" state.
func GetWeightSummary(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	summary, err := services.GetWeightSummary(userID)
	if err != nil {
		log.Errorf("building weight summary for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
