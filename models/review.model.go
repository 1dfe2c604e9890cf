package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is one rating+comment per (student, course) pair, allowed only
// after enrollment.
type Review struct {
	gorm.Model
	StudentID  uint           `json:"student_id" gorm:"uniqueIndex:idx_review_pair;not null"`
	CourseID   uint           `json:"course_id" gorm:"uniqueIndex:idx_review_pair;not null"`
	Rating     int            `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string         `json:"comment" gorm:"type:text;default:''"`
	ReviewedOn time.Time      `json:"reviewed_on"`
	IsDeleted  bool           `json:"-" gorm:"default:false"`
	Student    StudentProfile `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Course     Course         `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
