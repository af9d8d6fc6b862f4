package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	LoginID      string `gorm:"uniqueIndex;size:50;not null"`
	DisplayName  string `gorm:"size:50;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:32;not null;default:user"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
