package models

import "time"

type Song struct {
	ID         uint   `gorm:"primaryKey"`
	Title      string `gorm:"size:255;not null"`
	Artist     string `gorm:"size:255"`
	BPM        int    `gorm:"column:bpm"`
	Duration   int
	Difficulty int
	FilePath   string `gorm:"size:255;not null"`
	ImagePath  string `gorm:"size:255"`
	CreatedAt  time.Time
}
