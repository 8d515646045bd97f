package models

import (
	"time"
)

// EcoScore is one saved score. Rows are immutable once created; they are
// removed either by an ownership-checked delete or when the owning user is
// deleted.
type EcoScore struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	UserID              string    `json:"user_id" gorm:"not null;size:191;index:idx_eco_scores_user_created,priority:1"`
	TotalScore          float64   `json:"total_score" gorm:"not null"`
	TransportationScore float64   `json:"transportation_score" gorm:"not null"`
	HomeScore           float64   `json:"home_score" gorm:"not null"`
	FoodScore           float64   `json:"food_score" gorm:"not null"`
	ShoppingScore       float64   `json:"shopping_score" gorm:"not null"`
	TravelScore         float64   `json:"travel_score" gorm:"not null"`
	CreatedAt           time.Time `json:"created_at" gorm:"index:idx_eco_scores_user_created,priority:2"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// ScoreBreakdown is the five-category decomposition supplied by the caller
// at save time. It is a separate category set from the calculator's input
// factors and is never derived from them.
type ScoreBreakdown struct {
	Transportation float64 `json:"transportation"`
	Home           float64 `json:"home"`
	Food           float64 `json:"food"`
	Shopping       float64 `json:"shopping"`
	Travel         float64 `json:"travel"`
}

// EcoScoreEntry is the listing shape returned to clients. The comparison
// field is derived on read and never stored.
type EcoScoreEntry struct {
	ID                  uint           `json:"id"`
	Score               float64        `json:"score"`
	CreatedAt           time.Time      `json:"created_at"`
	Breakdown           ScoreBreakdown `json:"breakdown"`
	ComparisonToAverage int            `json:"comparisonToAverage"`
}
