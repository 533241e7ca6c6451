package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authModel "ansarullah_backend/internals/features/users/auth/model"
)

const defaultRetentionDays = 7

// StartBlacklistCleanupScheduler prunes expired blacklist rows once a day.
// Tokens stay blacklisted for a grace window after their own expiry so that
// clock skew between app instances cannot resurrect a revoked token.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	retention := retentionDays()
	log.Printf("[INFO] Token blacklist cleanup scheduler started (retention: %d days)", retention)

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		cleanupOnce(db, retention)
		for range ticker.C {
			cleanupOnce(db, retention)
		}
	}()
}

func cleanupOnce(db *gorm.DB, retentionDays int) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	res := db.Unscoped().
		Where("expired_at < ?", cutoff).
		Delete(&authModel.TokenBlacklist{})
	if res.Error != nil {
		log.Printf("[ERROR] Token blacklist cleanup failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[SUCCESS] Token blacklist cleanup removed %d expired token(s)", res.RowsAffected)
	}
}

func retentionDays() int {
	if v := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultRetentionDays
}
