package services

import (
	"errors"
	"fmt"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

type PhotoService struct {
	db *gorm.DB
}

func NewPhotoService(db *gorm.DB) *PhotoService {
	return &PhotoService{db: db}
}

type PhotoInput struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// ReplaceAll deletes every photo row for the menu and inserts the new set in
// one transaction. Clients skip this call entirely when the photo set is
// unchanged from what they loaded; the server contract is the same either
// way.
func (s *PhotoService) ReplaceAll(menuID uint, inputs []PhotoInput) ([]models.MenuPhoto, error) {
	if err := s.menuExists(menuID); err != nil {
		return nil, err
	}

	rows := make([]models.MenuPhoto, 0, len(inputs))
	for i, in := range inputs {
		if strings.TrimSpace(in.URL) == "" {
			return nil, fmt.Errorf("%w: photo %d has no url", ErrValidation, i+1)
		}
		rows = append(rows, models.MenuPhoto{
			RefMenuID: menuID,
			URL:       strings.TrimSpace(in.URL),
			Caption:   in.Caption,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ref_menu_id = ?", menuID).Delete(&models.MenuPhoto{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *PhotoService) ListByMenu(menuID uint) ([]models.MenuPhoto, error) {
	var rows []models.MenuPhoto
	err := s.db.Where("ref_menu_id = ?", menuID).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (s *PhotoService) menuExists(menuID uint) error {
	var menu models.Menu
	if err := s.db.Select("id").First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
