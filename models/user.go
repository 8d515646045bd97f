package models

import (
	"time"
)

type User struct {
	ID                string    `json:"id" gorm:"primaryKey;size:191"`
	Name              string    `json:"name" gorm:"not null;size:255"`
	Email             string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password          string    `json:"-" gorm:"not null;size:255"`
	EmailVerified     bool      `json:"email_verified" gorm:"default:false"`
	VerificationToken string    `json:"-" gorm:"index;size:32"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relationships
	EcoScores []EcoScore `json:"eco_scores,omitempty" gorm:"foreignKey:UserID"`
}
