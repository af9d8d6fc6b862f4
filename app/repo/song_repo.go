package repo

import (
	"facebeat/app/models"

	"gorm.io/gorm"
)

type SongRepository struct{ db *gorm.DB }

func NewSongRepository(db *gorm.DB) *SongRepository { return &SongRepository{db: db} }

func (r *SongRepository) Create(s *models.Song) error { return r.db.Create(s).Error }

func (r *SongRepository) FindByID(id uint) (*models.Song, error) {
	var s models.Song
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SongRepository) FindAll() ([]models.Song, error) {
	var songs []models.Song
	return songs, r.db.Order("id ASC").Find(&songs).Error
}

func (r *SongRepository) FindByIDs(ids []uint) ([]models.Song, error) {
	var songs []models.Song
	if len(ids) == 0 {
		return songs, nil
	}
	return songs, r.db.Where("id IN ?", ids).Find(&songs).Error
}

// DeleteWithScores removes the song row and every score recorded against it
// in one transaction, so the ledger never references a missing song.
func (r *SongRepository) DeleteWithScores(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("song_id = ?", id).Delete(&models.Score{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Song{}, id).Error
	})
}
