package api

import (
	"net/http"

	"speakwell/practice-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type progressStats struct {
	TotalAttempts   int64    `json:"totalAttempts"`
	AverageAccuracy *float64 `json:"averageAccuracy"`
	BestAccuracy    *int     `json:"bestAccuracy"`
}

func (a *API) Progress(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var stats progressStats

	err := a.DB.Model(model.Attempt{}).
		Where("user_id = ?", userID).
		Select("COUNT(*) AS total_attempts, AVG(accuracy) AS average_accuracy, MAX(accuracy) AS best_accuracy").
		Scan(&stats).Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to aggregate attempts", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	recent := []model.Attempt{}

	err = a.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(10).
		Find(&recent).Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load recent attempts", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalAttempts":   stats.TotalAttempts,
		"averageAccuracy": stats.AverageAccuracy,
		"bestAccuracy":    stats.BestAccuracy,
		"recent":          recent,
	})
}
