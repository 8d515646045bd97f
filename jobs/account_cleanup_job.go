package jobs

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"ecotrack-api/models"
	"ecotrack-api/repositories"
)

// AccountCleanupJob periodically prunes accounts that never verified their
// email within the retention window.
type AccountCleanupJob struct {
	db        *gorm.DB
	scoreRepo *repositories.EcoScoreRepository
	retention time.Duration
	ticker    *time.Ticker
	done      chan bool
}

func NewAccountCleanupJob(db *gorm.DB, scoreRepo *repositories.EcoScoreRepository, interval, retention time.Duration) *AccountCleanupJob {
	return &AccountCleanupJob{
		db:        db,
		scoreRepo: scoreRepo,
		retention: retention,
		ticker:    time.NewTicker(interval),
		done:      make(chan bool),
	}
}

// Start begins the cleanup job
func (j *AccountCleanupJob) Start() {
	fmt.Println("Account cleanup job started")

	go func() {
		// Run immediately on start
		j.cleanup()

		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				fmt.Println("Account cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *AccountCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *AccountCleanupJob) cleanup() {
	cutoff := time.Now().Add(-j.retention)

	err := j.db.Transaction(func(tx *gorm.DB) error {
		var stale []models.User
		if err := tx.Select("id").
			Where("email_verified = ? AND created_at < ?", false, cutoff).
			Find(&stale).Error; err != nil {
			return err
		}
		if len(stale) == 0 {
			return nil
		}

		ids := make([]string, len(stale))
		for i, user := range stale {
			ids[i] = user.ID
			if err := j.scoreRepo.DeleteAllByUser(tx, user.ID); err != nil {
				return err
			}
		}

		if err := tx.Where("id IN ?", ids).Delete(&models.User{}).Error; err != nil {
			return err
		}

		fmt.Printf("Account cleanup removed %d unverified accounts\n", len(ids))
		return nil
	})
	if err != nil {
		fmt.Printf("Error during account cleanup: %v\n", err)
	}
}
