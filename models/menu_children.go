package models

import "gorm.io/gorm"

// Ingredient and step type enums.
const (
	IngredientTypeRaw       = "raw"       // raw ingredient
	IngredientTypeSeasoning = "seasoning" // seasoning / herb

	StepTypePrep = "prep"
	StepTypeCook = "cook"
)

// The three child collections share a lifecycle: the whole set for a menu is
// deleted and reinserted on every save, so rows have no stable identity
// across saves.

type MenuIngredient struct {
	gorm.Model
	RefMenuID          uint   `gorm:"index;not null" json:"ref_menu_id"`
	Type               string `gorm:"size:16" json:"type"`
	MasterIngredientID *uint  `gorm:"index" json:"master_ingredient_id"`
	Name               string `json:"name"` // free-text fallback when unresolved
	Quantity           string `gorm:"size:32" json:"quantity"`
	Unit               string `gorm:"size:32" json:"unit"`
	Note               string `json:"note"`
	IsMain             bool   `json:"is_main"`
}

type MenuStep struct {
	gorm.Model
	RefMenuID   uint   `gorm:"index;not null" json:"ref_menu_id"`
	Type        string `gorm:"size:16" json:"type"`
	StepOrder   int    `gorm:"column:step_order;not null" json:"order"` // 1-based, dense
	Instruction string `gorm:"type:text" json:"instruction"`
}

type MenuPhoto struct {
	gorm.Model
	RefMenuID uint   `gorm:"index;not null" json:"ref_menu_id"`
	URL       string `gorm:"not null" json:"url"`
	Caption   string `json:"caption"`
}
