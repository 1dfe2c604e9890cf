package models

import "gorm.io/gorm"

// StudentProfile is the 1:1 student extension of a User. Enrollments and
// reviews hang off this record, not the user itself.
type StudentProfile struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Phone     string `json:"phone" gorm:"default:''"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
	User      User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// InstructorProfile is the 1:1 instructor extension of a User.
type InstructorProfile struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Expertise string `json:"expertise" gorm:"default:''"`
	Bio       string `json:"bio" gorm:"type:text;default:''"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
	User      User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
