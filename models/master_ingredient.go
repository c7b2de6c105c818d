package models

import "gorm.io/gorm"

// MasterIngredient is a deduplicated catalog entry shared across menus.
// NameNorm carries the lowercased, trimmed name under a unique index so two
// concurrent creates of the same name collide at the database instead of
// producing duplicates.
type MasterIngredient struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	NameNorm string `gorm:"uniqueIndex;not null" json:"-"`
	Verified bool   `gorm:"default:false" json:"verified"`
}
