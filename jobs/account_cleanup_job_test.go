package jobs

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ecotrack-api/models"
	"ecotrack-api/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.EcoScore{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, id string, verified bool, createdAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{
		ID:            id,
		Name:          "Test User",
		Email:         id + "@example.com",
		Password:      "hashed",
		EmailVerified: verified,
		CreatedAt:     createdAt,
	}).Error)
}

func TestCleanupPrunesStaleUnverifiedAccounts(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewEcoScoreRepository(db, 2*time.Second)

	now := time.Now()
	createUser(t, db, "stale-unverified", false, now.Add(-10*24*time.Hour))
	createUser(t, db, "fresh-unverified", false, now.Add(-time.Hour))
	createUser(t, db, "stale-verified", true, now.Add(-10*24*time.Hour))

	for _, userID := range []string{"stale-unverified", "stale-verified"} {
		require.NoError(t, db.Create(&models.EcoScore{UserID: userID, TotalScore: 50}).Error)
	}

	job := NewAccountCleanupJob(db, repo, time.Hour, 7*24*time.Hour)
	defer job.ticker.Stop()

	job.cleanup()

	var remaining []models.User
	require.NoError(t, db.Order("id").Find(&remaining).Error)
	require.Len(t, remaining, 2)
	assert.Equal(t, "fresh-unverified", remaining[0].ID)
	assert.Equal(t, "stale-verified", remaining[1].ID)

	// Orphaned scores are gone; the verified user's survive
	var count int64
	require.NoError(t, db.Model(&models.EcoScore{}).Where("user_id = ?", "stale-unverified").Count(&count).Error)
	assert.Zero(t, count)

	require.NoError(t, db.Model(&models.EcoScore{}).Where("user_id = ?", "stale-verified").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCleanupWithNothingStaleIsANoOp(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewEcoScoreRepository(db, 2*time.Second)

	createUser(t, db, "fresh-unverified", false, time.Now())

	job := NewAccountCleanupJob(db, repo, time.Hour, 7*24*time.Hour)
	defer job.ticker.Stop()

	job.cleanup()

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
