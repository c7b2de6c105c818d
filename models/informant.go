package models

import (
	"time"

	"gorm.io/gorm"
)

// Informant is the interviewed person every menu references.
// Numeric survey fields are pointers so an unanswered field persists as NULL,
// never as a zero that could be mistaken for a real answer.
type Informant struct {
	gorm.Model
	CodeSv   string `gorm:"uniqueIndex;not null" json:"code_sv"` // human-friendly display code
	FullName string `gorm:"not null" json:"full_name"`

	Age        *int     `json:"age"`
	Gender     *string  `gorm:"size:16" json:"gender"`
	Occupation *string  `json:"occupation"`
	Income     *float64 `json:"income"`

	Address     string  `gorm:"type:text" json:"address"`
	District    string  `json:"district"`
	Subdistrict string  `json:"subdistrict"`
	Zipcode     string  `gorm:"size:10" json:"zipcode"`
	CanalZone   *string `gorm:"index" json:"canal_zone"`

	ResidencyYears  int `gorm:"default:0" json:"residency_years"`
	ResidencyMonths int `gorm:"default:0" json:"residency_months"`

	Phone string `gorm:"size:32" json:"phone"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Altitude  float64  `gorm:"default:0" json:"altitude"`

	ConsentDocURL string `json:"consent_doc_url"`

	RefSvCode string     `gorm:"index;not null" json:"ref_sv_code"` // enumerator who created the record
	EditedBy  *string    `json:"edited_by"`
	EditedAt  *time.Time `json:"edited_at"`

	Menus []Menu `gorm:"foreignKey:RefInformantID" json:"-"`
}
