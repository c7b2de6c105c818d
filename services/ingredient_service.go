package services

import (
	"errors"
	"fmt"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

type IngredientService struct {
	db     *gorm.DB
	master *MasterIngredientService
}

func NewIngredientService(db *gorm.DB, master *MasterIngredientService) *IngredientService {
	return &IngredientService{db: db, master: master}
}

type IngredientInput struct {
	Type               string `json:"type"`
	MasterIngredientID *uint  `json:"master_ingredient_id"`
	Name               string `json:"name"`
	Quantity           string `json:"quantity"`
	Unit               string `json:"unit"`
	Note               string `json:"note"`
	IsMain             bool   `json:"is_main"`
}

func validIngredientType(t string) bool {
	return t == models.IngredientTypeRaw || t == models.IngredientTypeSeasoning
}

// ReplaceAll deletes every ingredient row for the menu and inserts the new
// set in one transaction: after the call the stored set equals exactly what
// was sent. Rows with a free-text name but no master reference are resolved
// through the shared catalog first.
func (s *IngredientService) ReplaceAll(menuID uint, inputs []IngredientInput) ([]models.MenuIngredient, error) {
	if err := s.menuExists(menuID); err != nil {
		return nil, err
	}

	rows := make([]models.MenuIngredient, 0, len(inputs))
	for i, in := range inputs {
		if !validIngredientType(in.Type) {
			return nil, fmt.Errorf("%w: ingredient %d has unknown type %q", ErrValidation, i+1, in.Type)
		}
		if in.MasterIngredientID == nil && strings.TrimSpace(in.Name) == "" {
			return nil, fmt.Errorf("%w: ingredient %d needs a name or a master reference", ErrValidation, i+1)
		}

		row := models.MenuIngredient{
			RefMenuID:          menuID,
			Type:               in.Type,
			MasterIngredientID: in.MasterIngredientID,
			Name:               strings.TrimSpace(in.Name),
			Quantity:           in.Quantity,
			Unit:               in.Unit,
			Note:               in.Note,
			IsMain:             in.IsMain,
		}

		// master-catalog resolution happens outside the replace transaction:
		// catalog entries are shared and must survive a failed save
		if row.MasterIngredientID == nil {
			entry, err := s.master.FindOrCreate(row.Name)
			if err != nil {
				return nil, err
			}
			row.MasterIngredientID = &entry.ID
		}
		rows = append(rows, row)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ref_menu_id = ?", menuID).Delete(&models.MenuIngredient{}).Error; err != nil {
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

func (s *IngredientService) ListByMenu(menuID uint) ([]models.MenuIngredient, error) {
	var rows []models.MenuIngredient
	err := s.db.Where("ref_menu_id = ?", menuID).Find(&rows).Error
	return rows, err
}

func (s *IngredientService) menuExists(menuID uint) error {
	var menu models.Menu
	if err := s.db.Select("id").First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
