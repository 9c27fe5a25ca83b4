package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"speakwell/practice-api/internal/model"
	"speakwell/practice-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// resetMsg is returned whether or not the account exists, so the
// endpoint can't be used to probe for registered emails
const resetMsg = "If the account exists, a reset link has been sent"

type forgotPasswordBody struct {
	Email string `json:"email"`
}

func (a *API) AuthForgotPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data forgotPasswordBody
	if err := c.ShouldBind(&data); err != nil || data.Email == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Email field can't be empty",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	err := a.DB.Where("email = ?", strings.ToLower(data.Email)).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{
				"message": resetMsg,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	resetToken, err := security.GenerateOpaqueToken()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	expiry := time.Now().Add(time.Hour)

	err = a.DB.Model(model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"reset_token":      resetToken,
			"reset_expires_at": expiry,
		}).Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", viper.GetString("frontend.url"), resetToken)

	if err := a.Mailer.SendResetMail(user.Email, user.FirstName, resetURL); err != nil {
		zap.L().Warn("Failed to send reset email", zap.Error(err), zap.String("requestID", requestID))
	}

	resp := gin.H{
		"message": resetMsg,
	}

	if viper.GetBool("mail.expose_links") {
		resp["resetUrl"] = resetURL
	}

	c.JSON(http.StatusOK, resp)
}
