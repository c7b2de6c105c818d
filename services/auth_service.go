package services

import (
	"errors"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Authenticate checks code + password and issues the session token carrying
// the enumerator code and role.
func (s *AuthService) Authenticate(code, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.Where("code = ?", code).First(&user).Error; err != nil {
		return "", nil, errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.Code, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

func (s *AuthService) GetByCode(code string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("code = ?", code).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
