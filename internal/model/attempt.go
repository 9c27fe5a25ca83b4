package model

import "time"

// Attempt records one simulated pronunciation attempt for a user.
type Attempt struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"index;not null" json:"-"`
	Word      string    `gorm:"not null" json:"word"`
	Accuracy  int       `json:"accuracy"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"createdAt"`
}
