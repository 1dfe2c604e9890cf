package models

import (
	"gorm.io/gorm"
)

// Role values. A user holds exactly one role, so student/instructor
// exclusivity is enforced by the column itself.
const (
	RoleStudent    = "STUDENT"
	RoleInstructor = "INSTRUCTOR"
	RoleAdmin      = "ADMIN"
)

type User struct {
	gorm.Model
	Name       string `json:"name" gorm:"default:''"`
	Email      string `json:"email" gorm:"unique;not null"`
	Password   string `json:"-" gorm:"not null"`
	Role       string `json:"role" gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR, ADMIN
	Phone      string `json:"phone" gorm:"default:''"`
	ProfilePic string `json:"profile_pic" gorm:"default:''"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}
