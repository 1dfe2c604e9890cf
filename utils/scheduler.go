package utils

import (
	"log"
	"time"

	"lewagon/database"
	"lewagon/models"

	"github.com/robfig/cron/v3"
)

// purgeExpiredTokens deletes blacklist rows whose token already expired.
// An expired JWT is rejected by signature validation anyway, so keeping the
// row buys nothing.
func purgeExpiredTokens() {
	result := database.Database.Db.
		Unscoped().
		Where("expires_at < ?", time.Now()).
		Delete(&models.RevokedToken{})
	if result.Error != nil {
		log.Printf("[TOKEN-CLEANUP] failed to purge revoked tokens: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[TOKEN-CLEANUP] purged %d expired revoked tokens", result.RowsAffected)
	}
}

// StartSchedulers wires the background cron jobs. Currently only the daily
// revoked-token purge.
func StartSchedulers() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@daily", purgeExpiredTokens); err != nil {
		log.Fatalf("Failed to register token cleanup job: %v", err)
	}

	c.Start()
	log.Println("Schedulers started.")
	return c
}
