package api

import (
	"net/http"
	"time"

	"speakwell/practice-api/internal/model"
	"speakwell/practice-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// issueSession mints a fresh access/refresh pair, persists the digest
// of the refresh token on the user row (overwriting any previous one,
// which invalidates it) and sets the cookies.
func (a *API) issueSession(c *gin.Context, user *model.User) error {
	access, err := a.Tokens.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		return err
	}

	refresh, err := a.Tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return err
	}

	hash := security.HashToken(refresh)
	expiry := time.Now().Add(a.Tokens.RefreshTTL)

	err = a.DB.Model(model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"refresh_token_hash": hash,
			"refresh_expires_at": expiry,
		}).Error
	if err != nil {
		return err
	}

	setAuthCookies(c, access, refresh, a.Tokens.AccessTTL, a.Tokens.RefreshTTL)
	return nil
}

func setAuthCookies(c *gin.Context, access, refresh string, accessTTL, refreshTTL time.Duration) {
	secure := viper.GetBool("host.ssl.enabled")

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("access_token", access, int(accessTTL.Seconds()), "/", "", secure, true)
	c.SetCookie("refresh_token", refresh, int(refreshTTL.Seconds()), "/api/auth", "", secure, true)

	// UI hint only, readable by the frontend
	c.SetCookie("logged_in", "1", int(refreshTTL.Seconds()), "/", "", secure, false)
}

func clearAuthCookies(c *gin.Context) {
	secure := viper.GetBool("host.ssl.enabled")

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("access_token", "", -1, "/", "", secure, true)
	c.SetCookie("refresh_token", "", -1, "/api/auth", "", secure, true)
	c.SetCookie("logged_in", "", -1, "/", "", secure, false)
}

// clearRefreshDigest drops the stored refresh token digest so no
// previously issued refresh token verifies anymore
func clearRefreshDigest(db *gorm.DB, userID string) error {
	return db.Model(model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"refresh_token_hash": nil,
			"refresh_expires_at": nil,
		}).Error
}
