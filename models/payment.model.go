package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment records a priced payment tied to an enrollment. It is created
// alongside the enrollment during payment capture.
type Payment struct {
	gorm.Model
	EnrollmentID uint       `json:"enrollment_id" gorm:"index;not null"`
	Price        float64    `json:"price" gorm:"not null"`
	Currency     string     `json:"currency" gorm:"default:'USD'"`
	PaidOn       time.Time  `json:"paid_on"`
	IsDeleted    bool       `json:"-" gorm:"default:false"`
	Enrollment   Enrollment `json:"-" gorm:"foreignKey:EnrollmentID;constraint:OnDelete:CASCADE"`
}
