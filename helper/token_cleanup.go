package helper

import (
	"log"
	"time"

	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/robfig/cron/v3"
)

var tokenScheduler *cron.Cron

func StartTokenCleanupScheduler() {
	tokenScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := tokenScheduler.AddFunc("*/5 * * * *", purgeExpiredResetTokens)
	if err != nil {
		log.Printf("Token cleanup scheduler init failed: %v", err)
		return
	}

	tokenScheduler.Start()
	log.Println("Token cleanup scheduler started (every 5 minutes)")
}

func purgeExpiredResetTokens() {
	result := database.DB.
		Where("expires_at < ?", time.Now()).
		Delete(&model.PasswordResetToken{})

	if result.Error != nil {
		log.Printf("Token cleanup failed: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Purged %d expired password reset tokens", result.RowsAffected)
	}
}

func StopTokenCleanupScheduler() {
	if tokenScheduler != nil {
		tokenScheduler.Stop()
		log.Println("Token cleanup scheduler stopped")
	}
}
