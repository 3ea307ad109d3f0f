package controllers

import (
	"net/http"
	"time"

	"github.com/zachhersick/macro-muse-mvp/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AddFoodLog inserts a food entry and responds with the row plus the day's
// recomputed totals, so the dashboard can update without a second fetch.
func AddFoodLog(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input services.FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.AddFoodLog(userID, input)
	if err != nil {
		log.Errorf("adding food log for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	progress, err := services.GetDailyProgress(userID)
	if err != nil {
		log.Errorf("recomputing progress for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry, "summary": progress})
}

// ListFoodLogs returns a day's entries (default today) with the consumed/
// remaining/progress summary for that day.
func ListFoodLogs(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	logs, err := services.ListFoodLogsForDay(userID, day)
	if err != nil {
		log.Errorf("listing food logs for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	goal, isDefault, err := services.GetActiveGoal(userID)
	if err != nil {
		log.Errorf("fetching active goal for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	consumed := services.ComputeConsumed(logs)
	c.JSON(http.StatusOK, gin.H{
		"date":            day.Format("2006-01-02"),
		"logs":            logs,
		"goal":            goal,
		"is_default_goal": isDefault,
		"consumed":        consumed,
		"remaining":       services.ComputeRemaining(goal, consumed),
		"progress":        services.ProgressPercent(consumed, goal),
	})
}

// SearchFoods backs the food picker's search box.
func SearchFoods(c *gin.Context) {
	items, err := services.SearchFoods(c.Query("q"))
	if err != nil {
		log.Errorf("searching food catalog: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": items, "count": len(items)})
}
