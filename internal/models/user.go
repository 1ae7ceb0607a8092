package models

import "gorm.io/gorm"

const (
	RoleStudent = "student"
	RoleStaff   = "staff"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"unique" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"type:varchar(20);default:'student'" json:"role"`
	Grade    string `json:"grade,omitempty"`
	StaffID  string `json:"staff_id,omitempty"`
}
