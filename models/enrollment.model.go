package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	EnrollmentStatusEnrolled  = "ENROLLED"
	EnrollmentStatusCompleted = "COMPLETED"
)

// Enrollment links a student to a course and tracks completion progress.
// The (student, course) pair is unique; Status is flipped by an explicit
// completion call, never derived from Progress.
type Enrollment struct {
	gorm.Model
	StudentID  uint           `json:"student_id" gorm:"uniqueIndex:idx_student_course;not null"`
	CourseID   uint           `json:"course_id" gorm:"uniqueIndex:idx_student_course;not null"`
	EnrolledOn time.Time      `json:"enrolled_on"`
	Progress   float64        `json:"progress" gorm:"default:0"` // completion percentage (0-100)
	Status     string         `json:"status" gorm:"default:'ENROLLED'"`
	IsDeleted  bool           `json:"-" gorm:"default:false"`
	Student    StudentProfile `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Course     Course         `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
