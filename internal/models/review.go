package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review difficulty enum.
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

var Difficulties = []string{DifficultyEasy, DifficultyNormal, DifficultyHard}

// MaxReviewTextLength bounds the free-text body of a review.
const MaxReviewTextLength = 2000

type Review struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_owner_game" json:"userId"`
	GameID string `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_owner_game" json:"gameId"`

	Score       int     `gorm:"not null;check:score >= 1 AND score <= 5" json:"score"`
	Text        string  `gorm:"not null" json:"text"`
	HoursPlayed float64 `gorm:"not null" json:"hoursPlayed"`
	Difficulty  string  `gorm:"not null" json:"difficulty"`
	Recommend   bool    `gorm:"not null;default:true" json:"recommend"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Game *Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"game,omitempty"`
}

// BeforeCreate hook to set UUID before creating a Review
func (review *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	return
}

func (Review) TableName() string {
	return "reviews"
}

// ValidDifficulty reports whether d is a known difficulty.
func ValidDifficulty(d string) bool {
	return contains(Difficulties, d)
}
