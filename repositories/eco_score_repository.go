package repositories

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"ecotrack-api/models"
	"ecotrack-api/utils"
)

// EcoScoreRepository persists eco score records. Every call runs under a
// bounded timeout so a slow store surfaces as an error instead of hanging
// the request.
type EcoScoreRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewEcoScoreRepository(db *gorm.DB, timeout time.Duration) *EcoScoreRepository {
	return &EcoScoreRepository{db: db, timeout: timeout}
}

// Save inserts a new record. The id and created_at fields are filled in by
// the store.
func (r *EcoScoreRepository) Save(ctx context.Context, score *models.EcoScore) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(score).Error; err != nil {
		log.Printf("eco score save failed for user %s: %v", score.UserID, err)
		return fmt.Errorf("saving eco score: %w", utils.ErrStoreUnavailable)
	}
	return nil
}

// ListByUser returns all records owned by userID, newest first. Ties on
// created_at are broken by id so the ordering is stable for saves landing
// in the same timestamp tick.
func (r *EcoScoreRepository) ListByUser(ctx context.Context, userID string) ([]models.EcoScore, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var scores []models.EcoScore
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&scores).Error
	if err != nil {
		log.Printf("eco score list failed for user %s: %v", userID, err)
		return nil, fmt.Errorf("listing eco scores: %w", utils.ErrStoreUnavailable)
	}
	return scores, nil
}

// DeleteOwned deletes exactly one record, matching both id and owner in a
// single statement. A record that does not exist and a record owned by a
// different user are indistinguishable to the caller.
func (r *EcoScoreRepository) DeleteOwned(ctx context.Context, userID string, scoreID uint) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", scoreID, userID).
		Delete(&models.EcoScore{})
	if result.Error != nil {
		log.Printf("eco score delete failed for user %s, score %d: %v", userID, scoreID, result.Error)
		return fmt.Errorf("deleting eco score: %w", utils.ErrStoreUnavailable)
	}
	if result.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// DeleteAllByUser removes every record owned by userID. Runs inside the
// caller's transaction when tx is a transaction handle.
func (r *EcoScoreRepository) DeleteAllByUser(tx *gorm.DB, userID string) error {
	return tx.Where("user_id = ?", userID).Delete(&models.EcoScore{}).Error
}
