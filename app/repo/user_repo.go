package repo

import (
	"facebeat/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) CountByLoginID(loginID string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("login_id = ?", loginID).Count(&count).Error
}

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) FindByLoginID(loginID string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("login_id = ?", loginID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByLoginIDs(loginIDs []string) ([]models.User, error) {
	var users []models.User
	if len(loginIDs) == 0 {
		return users, nil
	}
	return users, r.db.Where("login_id IN ?", loginIDs).Find(&users).Error
}
