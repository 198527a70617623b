package logging

import (
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/models"
	"gorm.io/gorm"
)

// StartCleanup deletes system_logs older than retention once a day until
// done is closed.
func StartCleanup(db *gorm.DB, retention time.Duration, done <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted, err := PurgeBefore(db, time.Now().Add(-retention))
				if err != nil {
					slog.Error("log cleanup failed", "action", "log_cleanup", "error", err.Error())
				} else if deleted > 0 {
					slog.Info("log cleanup completed", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}

// PurgeBefore removes log rows recorded before cutoff.
func PurgeBefore(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}
