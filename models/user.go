package models

import (
	"gorm.io/gorm"
)

// User is an application account. Role is one of "admin" | "director" | "user".
// Supervisors form a tree of depth at most 1: a user that supervises others
// cannot have a supervisor of their own.
type User struct {
	gorm.Model
	Code         string `gorm:"uniqueIndex;not null" json:"code"` // login identity, also used as sv_code
	Name         string `json:"name"`
	Role         string `gorm:"size:16;not null;default:user" json:"role"`
	SupervisorID *uint  `gorm:"index" json:"supervisor_id"`
	Faculty      string `json:"faculty"`
	Major        string `json:"major"`
	Phone        string `gorm:"size:32" json:"phone"`
	Password     string `gorm:"not null" json:"-"`
}
