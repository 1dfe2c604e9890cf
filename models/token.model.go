package models

import (
	"time"

	"gorm.io/gorm"
)

// RevokedToken blacklists a JWT by its jti claim on logout. Rows past
// ExpiresAt are purged by the daily cleanup job.
type RevokedToken struct {
	gorm.Model
	Jti       string    `json:"jti" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at"`
}
