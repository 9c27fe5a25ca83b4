package api

import (
	"net/http"

	"speakwell/practice-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) LessonList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	q := a.DB.Model(model.Lesson{})

	if lang := c.Query("language"); lang != "" {
		q = q.Where("language = ?", lang)
	}

	if level := c.Query("level"); level != "" {
		q = q.Where("level = ?", level)
	}

	var lessons []model.Lesson

	if err := q.Order("id").Find(&lessons).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load lesson catalog", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lessons": lessons,
	})
}
