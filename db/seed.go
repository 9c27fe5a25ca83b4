package db

import (
	"speakwell/practice-api/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var catalog = []model.Lesson{
	{
		Title:       "English Vowel Sounds",
		Description: "Master the 12 English vowel sounds with interactive exercises",
		Language:    "English",
		Level:       "Beginner",
		DurationMin: 15,
		Rating:      4.8,
		Students:    1234,
		Thumbnail:   "🗣️",
	},
	{
		Title:       "Spanish Rolling R",
		Description: "Learn to roll your R's like a native Spanish speaker",
		Language:    "Spanish",
		Level:       "Intermediate",
		DurationMin: 20,
		Rating:      4.9,
		Students:    892,
		Thumbnail:   "🇪🇸",
	},
	{
		Title:       "French Nasal Sounds",
		Description: "Perfect your French nasal vowels and consonants",
		Language:    "French",
		Level:       "Advanced",
		DurationMin: 25,
		Rating:      4.7,
		Students:    567,
		Thumbnail:   "🇫🇷",
	},
	{
		Title:       "English Consonant Clusters",
		Description: "Practice difficult consonant combinations",
		Language:    "English",
		Level:       "Intermediate",
		DurationMin: 18,
		Rating:      4.6,
		Students:    1089,
		Thumbnail:   "📚",
	},
	{
		Title:       "German Umlauts",
		Description: "Master the unique German vowel sounds",
		Language:    "German",
		Level:       "Beginner",
		DurationMin: 12,
		Rating:      4.5,
		Students:    445,
		Thumbnail:   "🇩🇪",
	},
	{
		Title:       "Mandarin Tones",
		Description: "Learn the four tones of Mandarin Chinese",
		Language:    "Chinese",
		Level:       "Beginner",
		DurationMin: 30,
		Rating:      4.8,
		Students:    778,
		Thumbnail:   "🇨🇳",
	},
}

// SeedLessons fills the lesson catalog if it's empty. With force set
// the existing rows are dropped first (--reseed-lessons).
func SeedLessons(db *gorm.DB, force bool) error {
	if force {
		if err := db.Where("1 = 1").Delete(&model.Lesson{}).Error; err != nil {
			return err
		}
	}

	var count int64

	err := db.Model(model.Lesson{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	if err := db.Create(&catalog).Error; err != nil {
		return err
	}

	zap.L().Info("Seeded lesson catalog", zap.Int("lessons", len(catalog)))
	return nil
}
