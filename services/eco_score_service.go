package services

import (
	"context"
	"math"

	"ecotrack-api/models"
	"ecotrack-api/repositories"
	"ecotrack-api/utils"
)

// EcoScoreService wraps the score history store. It enforces the input
// invariants the storage layer deliberately does not (resolved user id,
// non-negative total) and derives the comparison-to-average annotation on
// read.
type EcoScoreService struct {
	repo             *repositories.EcoScoreRepository
	referenceAverage float64
}

func NewEcoScoreService(repo *repositories.EcoScoreRepository, referenceAverage float64) *EcoScoreService {
	return &EcoScoreService{
		repo:             repo,
		referenceAverage: referenceAverage,
	}
}

// Save persists a computed score with its caller-supplied breakdown and
// returns the new record id.
func (s *EcoScoreService) Save(ctx context.Context, userID string, totalScore float64, breakdown models.ScoreBreakdown) (uint, error) {
	if userID == "" {
		return 0, utils.ErrInvalidInput
	}
	if totalScore < 0 {
		return 0, utils.ErrInvalidInput
	}

	score := models.EcoScore{
		UserID:              userID,
		TotalScore:          totalScore,
		TransportationScore: breakdown.Transportation,
		HomeScore:           breakdown.Home,
		FoodScore:           breakdown.Food,
		ShoppingScore:       breakdown.Shopping,
		TravelScore:         breakdown.Travel,
	}

	if err := s.repo.Save(ctx, &score); err != nil {
		return 0, err
	}
	return score.ID, nil
}

// ListForUser returns the user's saved scores newest first, each annotated
// with its percentage delta against the reference average.
func (s *EcoScoreService) ListForUser(ctx context.Context, userID string) ([]models.EcoScoreEntry, error) {
	if userID == "" {
		return nil, utils.ErrInvalidInput
	}

	scores, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.EcoScoreEntry, len(scores))
	for i, score := range scores {
		entries[i] = models.EcoScoreEntry{
			ID:        score.ID,
			Score:     score.TotalScore,
			CreatedAt: score.CreatedAt,
			Breakdown: models.ScoreBreakdown{
				Transportation: score.TransportationScore,
				Home:           score.HomeScore,
				Food:           score.FoodScore,
				Shopping:       score.ShoppingScore,
				Travel:         score.TravelScore,
			},
			ComparisonToAverage: s.ComparisonToAverage(score.TotalScore),
		}
	}
	return entries, nil
}

// DeleteForUser deletes one record if and only if userID owns it.
func (s *EcoScoreService) DeleteForUser(ctx context.Context, userID string, scoreID uint) error {
	if userID == "" {
		return utils.ErrInvalidInput
	}
	return s.repo.DeleteOwned(ctx, userID, scoreID)
}

// ComparisonToAverage is the rounded percentage delta of a total score
// against the configured reference average. Halves round toward positive
// infinity, so an exact -2.5 delta reads as -2.
func (s *EcoScoreService) ComparisonToAverage(totalScore float64) int {
	return int(math.Floor((totalScore-s.referenceAverage)/s.referenceAverage*100 + 0.5))
}
