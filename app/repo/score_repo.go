package repo

import (
	"facebeat/app/models"

	"gorm.io/gorm"
)

type ScoreRepository struct{ db *gorm.DB }

func NewScoreRepository(db *gorm.DB) *ScoreRepository { return &ScoreRepository{db: db} }

func (r *ScoreRepository) Create(s *models.Score) error { return r.db.Create(s).Error }

// TopN returns at most limit scores ordered for the leaderboard: highest
// value first, earlier submission first on equal values, insert order as the
// final key so identical inputs always produce identical output.
func (r *ScoreRepository) TopN(limit int, songID *uint) ([]models.Score, error) {
	var scores []models.Score
	q := r.db.Order("value DESC, created_at ASC, id ASC").Limit(limit)
	if songID != nil {
		q = q.Where("song_id = ?", *songID)
	}
	return scores, q.Find(&scores).Error
}

func (r *ScoreRepository) CountBySongID(songID uint) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Score{}).Where("song_id = ?", songID).Count(&count).Error
}
