package services

import (
	"errors"
	"fmt"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

// autocomplete result cap
const masterSearchLimit = 15

type MasterIngredientService struct {
	db *gorm.DB
}

func NewMasterIngredientService(db *gorm.DB) *MasterIngredientService {
	return &MasterIngredientService{db: db}
}

// MasterIngredientRef is the minimal {id, name} pair autocomplete needs.
type MasterIngredientRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (s *MasterIngredientService) Search(query string) ([]MasterIngredientRef, error) {
	refs := []MasterIngredientRef{}
	query = strings.TrimSpace(query)
	if query == "" {
		return refs, nil
	}

	var matches []models.MasterIngredient
	like := "%" + strings.ToLower(query) + "%"
	if err := s.db.Where("name_norm LIKE ?", like).
		Order("name ASC").
		Limit(masterSearchLimit).
		Find(&matches).Error; err != nil {
		return nil, err
	}

	for _, m := range matches {
		refs = append(refs, MasterIngredientRef{ID: m.ID, Name: m.Name})
	}
	return refs, nil
}

// FindOrCreate returns the existing entry for a name (case-insensitive exact
// match) or lazily creates an unverified one. Two concurrent calls with the
// same novel name collide on the name_norm unique index; the loser re-fetches
// and returns the winner, so exactly one row ever exists per name.
func (s *MasterIngredientService) FindOrCreate(name string) (*models.MasterIngredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	norm := strings.ToLower(name)

	var existing models.MasterIngredient
	err := s.db.Where("name_norm = ?", norm).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := models.MasterIngredient{Name: name, NameNorm: norm, Verified: false}
	if err := s.db.Create(&entry).Error; err != nil {
		var winner models.MasterIngredient
		if ferr := s.db.Where("name_norm = ?", norm).First(&winner).Error; ferr == nil {
			return &winner, nil
		}
		return nil, err
	}
	return &entry, nil
}
