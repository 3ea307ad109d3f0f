package controllers

import (
	"net/http"

	"github.com/zachhersick/macro-muse-mvp/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func AddBodyComposition(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input services.BodyCompositionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.HasAnyValue() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one measurement value is required"})
		return
	}

	entry, err := services.AddBodyComposition(userID, input)
	if err != nil {
		log.Errorf("adding body composition for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func ListBodyCompositions(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	logs, series, err := services.ListBodyCompositions(userID)
	if err != nil {
		log.Errorf("listing body compositions for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs, "series": series, "count": len(logs)})
}

func AddBodyMeasurement(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input services.BodyMeasurementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.AddBodyMeasurement(userID, input)
	if err != nil {
		log.Errorf("adding measurement for user %d: %v", userID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListBodyMeasurements returns each measurement site's chart series with
// its latest value.
func ListBodyMeasurements(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	groups, err := services.ListBodyMeasurements(userID)
	if err != nil {
		log.Errorf("listing measurements for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"measurements": groups, "count": len(groups)})
}
