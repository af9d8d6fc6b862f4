package services

import (
	"errors"

	"facebeat/app/models"
	"facebeat/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// Signup hashes the password and persists a new user. The pre-check gives a
// friendly error for the common case; the unique index on login_id is the
// authority under concurrent signups, so a duplicate-key insert maps to the
// same error.
func (s *UserService) Signup(loginID, displayName, password string) (*models.User, error) {
	count, err := s.users.CountByLoginID(loginID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateIdentifier
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{LoginID: loginID, DisplayName: displayName, PasswordHash: string(hash), Role: "user"}
	if err := s.users.Create(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentifier
		}
		return nil, err
	}
	return u, nil
}

// Login returns ErrInvalidCredentials for both an unknown login id and a
// wrong password, so responses never reveal which ids exist.
func (s *UserService) Login(loginID, password string) (*models.User, error) {
	u, err := s.users.FindByLoginID(loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// CheckID reports whether a login id is still available.
func (s *UserService) CheckID(loginID string) (bool, error) {
	count, err := s.users.CountByLoginID(loginID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (s *UserService) EnsureAdmin(loginID, password string) error {
	if loginID == "" || password == "" {
		return nil
	}
	count, err := s.users.CountByLoginID(loginID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{LoginID: loginID, DisplayName: "Administrator", PasswordHash: string(hash), Role: "admin"})
}
