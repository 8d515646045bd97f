package services

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ecotrack-api/models"
	"ecotrack-api/repositories"
	"ecotrack-api/utils"
)

func newScoreService(t *testing.T) (*EcoScoreService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.EcoScore{}))
	require.NoError(t, db.Create(&models.User{
		ID:            "user-1",
		Name:          "Test User",
		Email:         "user-1@example.com",
		Password:      "hashed",
		EmailVerified: true,
	}).Error)

	repo := repositories.NewEcoScoreRepository(db, 2*time.Second)
	return NewEcoScoreService(repo, 4.8), db
}

func TestSaveRejectsInvalidInput(t *testing.T) {
	service, _ := newScoreService(t)

	_, err := service.Save(context.Background(), "", 50, models.ScoreBreakdown{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = service.Save(context.Background(), "user-1", -1, models.ScoreBreakdown{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestSaveThenListRoundTrip(t *testing.T) {
	service, _ := newScoreService(t)

	breakdown := models.ScoreBreakdown{
		Transportation: 20,
		Home:           15,
		Food:           12.5,
		Shopping:       10,
		Travel:         15,
	}
	id, err := service.Save(context.Background(), "user-1", 72.5, breakdown)
	require.NoError(t, err)
	assert.NotZero(t, id)

	entries, err := service.ListForUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, id, entries[0].ID)
	assert.Equal(t, 72.5, entries[0].Score)
	assert.Equal(t, breakdown, entries[0].Breakdown)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestListAnnotatesComparisonToAverage(t *testing.T) {
	service, _ := newScoreService(t)

	_, err := service.Save(context.Background(), "user-1", 4.8, models.ScoreBreakdown{})
	require.NoError(t, err)
	_, err = service.Save(context.Background(), "user-1", 9.6, models.ScoreBreakdown{})
	require.NoError(t, err)

	entries, err := service.ListForUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first: 9.6 was saved last
	assert.Equal(t, 100, entries[0].ComparisonToAverage)
	assert.Equal(t, 0, entries[1].ComparisonToAverage)
}

func TestComparisonToAverage(t *testing.T) {
	service := NewEcoScoreService(nil, 4.8)

	tests := []struct {
		total float64
		want  int
	}{
		{4.8, 0},
		{9.6, 100},
		{0, -100},
		{2.4, -50},
		{7.2, 50},
		{72.5, 1410},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, service.ComparisonToAverage(tt.total), "total %v", tt.total)
	}
}

func TestComparisonToAverageRoundsHalvesUp(t *testing.T) {
	// A reference of 100 makes the percentage delta land on exact halves
	service := NewEcoScoreService(nil, 100)

	assert.Equal(t, 3, service.ComparisonToAverage(102.5))
	assert.Equal(t, -2, service.ComparisonToAverage(97.5))
}

func TestDeleteForUserOwnership(t *testing.T) {
	service, db := newScoreService(t)
	require.NoError(t, db.Create(&models.User{
		ID:            "user-2",
		Name:          "Other User",
		Email:         "user-2@example.com",
		Password:      "hashed",
		EmailVerified: true,
	}).Error)

	id, err := service.Save(context.Background(), "user-1", 50, models.ScoreBreakdown{})
	require.NoError(t, err)

	err = service.DeleteForUser(context.Background(), "user-2", id)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	entries, err := service.ListForUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, service.DeleteForUser(context.Background(), "user-1", id))

	entries, err = service.ListForUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
