package api

import (
	"net/http"

	"speakwell/practice-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type verifyEmailBody struct {
	Token string `json:"token"`
}

func (a *API) AuthVerifyEmail(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data verifyEmailBody
	if err := c.ShouldBind(&data); err != nil || data.Token == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No verification token provided",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	err := a.DB.Where("verification_token = ?", data.Token).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "Invalid token",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up verification token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Single use: the token is cleared in the same update that flips
	// the verified flag
	err = a.DB.Model(model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"verified":           true,
			"verification_token": nil,
			"expires_at":         nil,
		}).Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to mark user verified", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Verification doubles as a login so the user lands in the app
	// with a session already set
	user.Verified = true
	if err := a.issueSession(c, &user); err != nil {
		zap.L().Warn("Failed to issue session after verification", zap.Error(err), zap.String("requestID", requestID))
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email verified successfully",
	})
}
