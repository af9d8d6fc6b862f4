package models

import "time"

// Score rows are append-only: submissions only ever insert, and the
// created-at timestamp doubles as the ranking tie-break key.
type Score struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:50;index;not null"`
	SongID    uint   `gorm:"index;not null"`
	Value     int    `gorm:"not null"`
	CreatedAt time.Time
}
