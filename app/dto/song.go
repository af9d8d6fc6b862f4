package dto

import (
	"time"

	"facebeat/app/models"
)

type SongResponse struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Artist     string    `json:"artist"`
	BPM        int       `json:"bpm"`
	Duration   int       `json:"duration"`
	Difficulty int       `json:"difficulty"`
	FilePath   string    `json:"filePath"`
	ImagePath  string    `json:"imagePath"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewSongResponse(s *models.Song) SongResponse {
	return SongResponse{
		ID:         s.ID,
		Title:      s.Title,
		Artist:     s.Artist,
		BPM:        s.BPM,
		Duration:   s.Duration,
		Difficulty: s.Difficulty,
		FilePath:   s.FilePath,
		ImagePath:  s.ImagePath,
		CreatedAt:  s.CreatedAt,
	}
}
