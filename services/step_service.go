package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

type StepService struct {
	db *gorm.DB
}

func NewStepService(db *gorm.DB) *StepService {
	return &StepService{db: db}
}

type StepInput struct {
	Type        string `json:"type"`
	Order       int    `json:"order"`
	Instruction string `json:"instruction"`
}

func validStepType(t string) bool {
	return t == models.StepTypePrep || t == models.StepTypeCook
}

// ReplaceAll deletes every step for the menu and inserts the new set in one
// transaction. Orders are re-normalized to a dense 1-based sequence sorted
// by the submitted order, so deleting a middle step client-side never leaves
// gaps.
func (s *StepService) ReplaceAll(menuID uint, inputs []StepInput) ([]models.MenuStep, error) {
	if err := s.menuExists(menuID); err != nil {
		return nil, err
	}

	sorted := make([]StepInput, len(inputs))
	copy(sorted, inputs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	rows := make([]models.MenuStep, 0, len(sorted))
	for i, in := range sorted {
		if !validStepType(in.Type) {
			return nil, fmt.Errorf("%w: step %d has unknown type %q", ErrValidation, i+1, in.Type)
		}
		if strings.TrimSpace(in.Instruction) == "" {
			return nil, fmt.Errorf("%w: step %d has no instruction", ErrValidation, i+1)
		}
		rows = append(rows, models.MenuStep{
			RefMenuID:   menuID,
			Type:        in.Type,
			StepOrder:   i + 1,
			Instruction: in.Instruction,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ref_menu_id = ?", menuID).Delete(&models.MenuStep{}).Error; err != nil {
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

// ListByMenu returns steps sorted ascending by order regardless of insertion
// order.
func (s *StepService) ListByMenu(menuID uint) ([]models.MenuStep, error) {
	var rows []models.MenuStep
	err := s.db.Where("ref_menu_id = ?", menuID).Order("step_order ASC").Find(&rows).Error
	return rows, err
}

func (s *StepService) menuExists(menuID uint) error {
	var menu models.Menu
	if err := s.db.Select("id").First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
