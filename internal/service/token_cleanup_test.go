package service

import (
	"fmt"
	"testing"
	"time"

	"speakwell/practice-api/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(model.User{}, model.Lesson{}, model.Attempt{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return db
}

func strPtr(s string) *string { return &s }

func TestSweepExpiredClearsStaleResetTokens(t *testing.T) {
	db := newTestDB(t)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	users := []model.User{
		{
			ID:             "expired",
			Email:          "expired@example.com",
			PasswordHash:   "x",
			Verified:       true,
			ResetToken:     strPtr("stale-token"),
			ResetExpiresAt: &past,
		},
		{
			ID:             "active",
			Email:          "active@example.com",
			PasswordHash:   "x",
			Verified:       true,
			ResetToken:     strPtr("live-token"),
			ResetExpiresAt: &future,
		},
	}

	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}

	if err := SweepExpired(db); err != nil {
		t.Fatalf("SweepExpired error: %v", err)
	}

	var expired, active model.User

	if err := db.First(&expired, "id = ?", "expired").Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if expired.ResetToken != nil {
		t.Error("expired reset token should have been cleared")
	}

	if err := db.First(&active, "id = ?", "active").Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if active.ResetToken == nil || *active.ResetToken != "live-token" {
		t.Error("live reset token should have been kept")
	}
}

func TestSweepExpiredRemovesStaleUnverifiedAccounts(t *testing.T) {
	db := newTestDB(t)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	users := []model.User{
		{ID: "stale", Email: "stale@example.com", PasswordHash: "x", ExpiresAt: &past},
		{ID: "fresh", Email: "fresh@example.com", PasswordHash: "x", ExpiresAt: &future},
		{ID: "done", Email: "done@example.com", PasswordHash: "x", Verified: true},
	}

	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}

	if err := SweepExpired(db); err != nil {
		t.Fatalf("SweepExpired error: %v", err)
	}

	var count int64
	if err := db.Model(model.User{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count users: %v", err)
	}

	if count != 2 {
		t.Errorf("expected 2 users after sweep, got %d", count)
	}

	var stale model.User
	if err := db.First(&stale, "id = ?", "stale").Error; err != gorm.ErrRecordNotFound {
		t.Errorf("stale unverified account should have been deleted, err = %v", err)
	}
}
