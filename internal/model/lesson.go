package model

type Lesson struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	Language    string  `gorm:"index" json:"language"`
	Level       string  `gorm:"index" json:"level"`
	DurationMin int     `json:"durationMin"`
	Rating      float64 `json:"rating"`
	Students    int     `json:"students"`
	Thumbnail   string  `json:"thumbnail"`
}
