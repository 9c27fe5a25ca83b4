// Package db handles the database connection and schema
package db

import (
	"fmt"

	"speakwell/practice-api/config"
	"speakwell/practice-api/internal/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the configured database and migrates the schema. The
// driver is selected with storage.driver (sqlite or postgres) and the
// DSN comes from storage.dsn. TranslateError is on so unique
// constraint violations surface as gorm.ErrDuplicatedKey regardless
// of the driver.
func New() (*gorm.DB, error) {
	var dialector gorm.Dialector

	dsn := viper.GetString("storage.dsn")

	switch viper.GetString("storage.driver") {
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	err = db.AutoMigrate(model.User{}, model.Lesson{}, model.Attempt{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	if err := SeedLessons(db, *config.ReseedLessons); err != nil {
		return nil, fmt.Errorf("failed to seed lesson catalog, %w", err)
	}

	return db, nil
}
