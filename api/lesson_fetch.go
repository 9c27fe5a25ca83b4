package api

import (
	"net/http"
	"strconv"

	"speakwell/practice-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) LessonFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid lesson ID",
			"requestID": requestID,
		})
		return
	}

	var lesson model.Lesson

	if err := a.DB.First(&lesson, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Lesson not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load lesson", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, lesson)
}
