package api

import (
	"math/rand"
	"net/http"

	"speakwell/practice-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type attemptBody struct {
	Word string `json:"word"`
}

// PracticeAttempt scores a pronunciation attempt. There's no real
// speech analysis behind this: accuracy is drawn uniformly from
// [60,100] with canned feedback per tier, which is what the practice
// UI expects.
func (a *API) PracticeAttempt(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data attemptBody
	if err := c.ShouldBind(&data); err != nil || data.Word == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Word field can't be empty",
			"requestID": requestID,
		})
		return
	}

	accuracy := rand.Intn(41) + 60

	var feedback string
	switch {
	case accuracy >= 85:
		feedback = "Excellent pronunciation! You nailed it!"
	case accuracy >= 70:
		feedback = "Good job! Try to emphasize the stressed syllables more."
	default:
		feedback = "Keep practicing! Focus on the phonetic guide and try again."
	}

	attempt := model.Attempt{
		UserID:   userID,
		Word:     data.Word,
		Accuracy: accuracy,
		Feedback: feedback,
	}

	if err := a.DB.Create(&attempt).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store attempt", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, attempt)
}
