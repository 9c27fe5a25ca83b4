package api

import (
	"net/http"
	"time"

	"speakwell/practice-api/internal/model"
	"speakwell/practice-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthRefresh rotates the token pair. The presented refresh token has
// to match the digest stored at its last issuance, so each refresh
// token works exactly once and a replayed one is rejected. Every
// failure mode returns the same response on purpose.
func (a *API) AuthRefresh(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	fail := func() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":     "Invalid refresh token",
			"requestID": requestID,
		})
	}

	tokenStr, err := c.Cookie("refresh_token")
	if err != nil {
		fail()
		return
	}

	claims, err := a.Tokens.Verify(tokenStr, security.TokenRefresh)
	if err != nil {
		fail()
		return
	}

	var user model.User

	err = a.DB.Where("id = ?", claims.Subject).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			fail()
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up refresh subject", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if user.RefreshTokenHash == nil || user.RefreshExpiresAt == nil {
		fail()
		return
	}

	if user.RefreshExpiresAt.Before(time.Now()) {
		fail()
		return
	}

	if !security.TokenHashMatches(tokenStr, *user.RefreshTokenHash) {
		// Either a stale token after a later login or a replay of an
		// already rotated one
		zap.L().Warn("Refresh token digest mismatch", zap.String("userID", user.ID), zap.String("requestID", requestID))
		fail()
		return
	}

	if err := a.issueSession(c, &user); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to rotate session", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed",
	})
}
