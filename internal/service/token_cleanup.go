package service

import (
	"time"

	"speakwell/practice-api/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenCleanup periodically clears expired reset tokens and removes
// accounts that never verified their email. Every read path re-checks
// expiry itself, so the sweeper is storage hygiene only.
func TokenCleanup(t time.Duration, db *gorm.DB) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Token cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			if err := SweepExpired(db); err != nil {
				zap.L().Error("Failed to sweep expired tokens", zap.Error(err))
			}
		}
	}()
}

// SweepExpired runs one cleanup pass
func SweepExpired(db *gorm.DB) error {
	now := time.Now()

	err := db.
		Model(model.User{}).
		Where("reset_expires_at < ?", now).
		Updates(map[string]any{
			"reset_token":      nil,
			"reset_expires_at": nil,
		}).Error
	if err != nil {
		return err
	}

	r := db.
		Where("verified = ? AND expires_at < ?", false, now).
		Delete(&model.User{})
	if r.Error != nil {
		return r.Error
	}

	if r.RowsAffected > 0 {
		zap.L().Info("Removed stale unverified accounts", zap.Int64("count", r.RowsAffected))
	}

	return nil
}
