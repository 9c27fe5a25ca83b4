package api

import (
	"net/http"

	"speakwell/practice-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthLogout clears the cookie pair and, when the refresh cookie still
// verifies, drops the stored refresh digest so the session can't be
// revived with a stolen cookie
func (a *API) AuthLogout(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	if tokenStr, err := c.Cookie("refresh_token"); err == nil {
		if claims, err := a.Tokens.Verify(tokenStr, security.TokenRefresh); err == nil {
			if err := clearRefreshDigest(a.DB, claims.Subject); err != nil {
				zap.L().Error("Failed to clear refresh digest", zap.Error(err), zap.String("requestID", requestID))
			}
		}
	}

	clearAuthCookies(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}
