package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lifecycle statuses of a game in a user's library.
const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusPaused     = "paused"
	StatusCompleted  = "completed"
	StatusAbandoned  = "abandoned"
)

// DefaultCoverURL is used when a game is created without cover art.
const DefaultCoverURL = "https://via.placeholder.com/300x400?text=No+Image"

// Genres and Platforms are closed tag sets; Statuses covers the lifecycle enum.
var (
	Genres = []string{"Action", "RPG", "Strategy", "Adventure", "Puzzle", "Sports", "Simulation", "Other"}

	Platforms = []string{"PC", "PlayStation", "Xbox", "Nintendo Switch", "Mobile", "Other"}

	Statuses = []string{StatusNotStarted, StatusInProgress, StatusPaused, StatusCompleted, StatusAbandoned}
)

type Game struct {
	ID          string   `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string   `gorm:"type:uuid;not null;index" json:"userId"`
	Title       string   `gorm:"not null" json:"title"`
	Genres      []string `gorm:"type:jsonb;serializer:json" json:"genres"`
	Platforms   []string `gorm:"type:jsonb;serializer:json" json:"platforms"`
	Year        int      `gorm:"not null" json:"year"`
	Developer   string   `gorm:"not null" json:"developer"`
	CoverURL    string   `gorm:"default:''" json:"coverUrl"`
	Description string   `json:"description"`
	Status      string   `gorm:"not null;default:'not-started'" json:"status"`
	HoursPlayed float64  `gorm:"not null;default:0" json:"hoursPlayed"`
	Note        string   `json:"note"`
	Rating      float64  `gorm:"not null;default:0" json:"rating"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook to set UUID before creating a Game
func (game *Game) BeforeCreate(tx *gorm.DB) (err error) {
	if game.ID == "" {
		game.ID = uuid.New().String()
	}
	return
}

func (Game) TableName() string {
	return "games"
}

// ValidGenre reports whether g is one of the closed genre tags.
func ValidGenre(g string) bool {
	return contains(Genres, g)
}

// ValidPlatform reports whether p is one of the closed platform tags.
func ValidPlatform(p string) bool {
	return contains(Platforms, p)
}

// ValidStatus reports whether s is a known lifecycle status.
func ValidStatus(s string) bool {
	return contains(Statuses, s)
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
