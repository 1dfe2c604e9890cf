package models

import "gorm.io/gorm"

// ContactMessage is a persisted contact form submission. The notification
// email to the operator is best-effort; this row is the source of truth.
type ContactMessage struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Email     string `json:"email" gorm:"not null"`
	Subject   string `json:"subject" gorm:"default:''"`
	Message   string `json:"message" gorm:"type:text;not null"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
