package controllers

import (
	"net/http"

	"github.com/zachhersick/macro-muse-mvp/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func GetProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	profile, err := services.GetProfile(userID)
	if err != nil {
		log.Errorf("fetching profile for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.UpdateProfile(userID, input)
	if err != nil {
		log.Errorf("updating profile for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}
