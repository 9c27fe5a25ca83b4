package model

import "time"

// User is the credential record for a learner account. Token and hash
// columns never leave the server: they are excluded from JSON.
type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	NativeLanguage   string `json:"nativeLanguage"`
	LearningLanguage string `json:"learningLanguage"`

	Verified          bool    `gorm:"default:false" json:"verified"`
	VerificationToken *string `gorm:"index" json:"-"`

	ResetToken     *string    `gorm:"index" json:"-"`
	ResetExpiresAt *time.Time `json:"-"`

	// Digest of the latest issued refresh token. Overwritten on every
	// login and refresh, so only the newest token verifies.
	RefreshTokenHash *string    `json:"-"`
	RefreshExpiresAt *time.Time `json:"-"`

	// Unverified accounts are garbage collected past this deadline
	ExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
