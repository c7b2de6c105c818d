package models

import (
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Menu categories.
const (
	CategorySavory = "savory"
	CategorySweet  = "sweet"
	CategorySnack  = "snack"
)

// Selection status tags applied by reviewers ("108" longlist, "93" shortlist,
// "36" final cut). Stored comma-joined in SelectionStatus.
var SelectionTags = []string{"108", "93", "36"}

// Menu is one recorded dish, the root of a survey submission. Multi-select
// survey answers are stored as JSON arrays; each has a free-text "other"
// override alongside.
type Menu struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	LocalName string `json:"local_name"`
	OtherName string `json:"other_name"` // other-language variant
	Category  string `gorm:"size:16;index" json:"category"`

	Popularity          datatypes.JSON `json:"popularity"`
	PopularityOther     string         `json:"popularity_other"`
	Rituals             datatypes.JSON `json:"rituals"`
	RitualsOther        string         `json:"rituals_other"`
	Seasonality         datatypes.JSON `json:"seasonality"`
	SeasonalityOther    string         `json:"seasonality_other"`
	IngredientSrc       datatypes.JSON `json:"ingredient_src"`
	IngredientSrcOther  string         `json:"ingredient_src_other"`
	HealthBenefits      datatypes.JSON `json:"health_benefits"`
	HealthBenefitsOther string         `json:"health_benefits_other"`
	Frequency           datatypes.JSON `json:"frequency"` // consumption frequency
	FrequencyOther      string         `json:"frequency_other"`
	Complexity          datatypes.JSON `json:"complexity"`
	ComplexityOther     string         `json:"complexity_other"`
	Taste               datatypes.JSON `json:"taste"`
	TasteOther          string         `json:"taste_other"`
	ServingSize         datatypes.JSON `json:"serving_size"`
	ServingSizeOther    string         `json:"serving_size_other"`
	Occasions           datatypes.JSON `json:"occasions"`
	OccasionsOther      string         `json:"occasions_other"`
	CookingMethods      datatypes.JSON `json:"cooking_methods"`
	CookingMethodsOther string         `json:"cooking_methods_other"`
	Preservation        datatypes.JSON `json:"preservation"`
	PreservationOther   string         `json:"preservation_other"`

	Story          string `gorm:"type:text" json:"story"`
	HeritageStatus string `gorm:"type:text" json:"heritage_status"`
	SecretTips     string `gorm:"type:text" json:"secret_tips"`
	Awards         string `gorm:"type:text" json:"awards"`

	// comma-joined subset of SelectionTags, e.g. "108,93"
	SelectionStatus string `gorm:"size:32;index" json:"-"`

	RefInformantID uint   `gorm:"index;not null" json:"ref_informant_id"`
	RefSvCode      string `gorm:"index;not null" json:"ref_sv_code"` // submitting enumerator

	Ingredients []MenuIngredient `gorm:"foreignKey:RefMenuID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Steps       []MenuStep       `gorm:"foreignKey:RefMenuID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
	Photos      []MenuPhoto      `gorm:"foreignKey:RefMenuID;constraint:OnDelete:CASCADE" json:"photos,omitempty"`
}

// SelectionTagList splits the stored tag set for JSON responses.
func (m *Menu) SelectionTagList() []string {
	if m.SelectionStatus == "" {
		return []string{}
	}
	return strings.Split(m.SelectionStatus, ",")
}

// JoinSelectionTags canonicalizes a tag set into storage form, keeping only
// known tags and the fixed 108 > 93 > 36 display order.
func JoinSelectionTags(tags []string) string {
	var kept []string
	for _, known := range SelectionTags {
		for _, t := range tags {
			if t == known {
				kept = append(kept, known)
				break
			}
		}
	}
	return strings.Join(kept, ",")
}
