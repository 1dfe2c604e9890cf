package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusPending   = "PENDING"
)

// Transactions is the provider-side audit log for payment captures. OrderID
// is the provider order id and is unique, so a replayed capture callback is
// rejected before any enrollment is touched.
type Transactions struct {
	gorm.Model
	UserID           uint           `json:"user_id" gorm:"index;not null"`
	CourseID         uint           `json:"course_id" gorm:"index;not null"`
	Amount           float64        `json:"amount" gorm:"not null"`
	Status           string         `json:"status" gorm:"not null"` // COMPLETED, PENDING
	OrderID          string         `json:"order_id" gorm:"uniqueIndex;not null"`
	Reference        string         `json:"reference"`
	ProviderResponse datatypes.JSON `json:"-"`
	TransactionDate  time.Time      `json:"transaction_date"`
	IsDeleted        bool           `json:"-" gorm:"default:false"`
	User             User           `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course           Course         `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
