package dto

type ScoreRequest struct {
	UserID string `json:"userId"`
	SongID uint   `json:"songId"`
	Score  int    `json:"score"`
}
