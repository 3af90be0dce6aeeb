package repository

import (
	"context"
	"encoding/json"

	"gameshelf/internal/models"

	"gorm.io/gorm"
)

// GameFilter holds the optional equality filters of the filtered listing.
// Zero values are no-ops; set filters are combined with AND.
type GameFilter struct {
	Genre     string
	Platform  string
	Completed *bool
}

// GameRepository defines the interface for game data operations. Every query
// that takes a userID is ownership-scoped: a wrong id and a wrong owner are
// both gorm.ErrRecordNotFound, indistinguishable by design.
type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	FindByOwner(ctx context.Context, userID string) ([]models.Game, error)
	FindOwned(ctx context.Context, id, userID string) (*models.Game, error)
	Filter(ctx context.Context, userID string, filter GameFilter) ([]models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	DeleteWithReviews(ctx context.Context, game *models.Game) error
}

// gameRepository is the GORM implementation of GameRepository.
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new instance of GameRepository in a GORM implementation
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *gameRepository) FindByOwner(ctx context.Context, userID string) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gameRepository) FindOwned(ctx context.Context, id, userID string) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&game).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) Filter(ctx context.Context, userID string, filter GameFilter) ([]models.Game, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	// Tag sets are jsonb arrays; containment matches a single tag.
	if filter.Genre != "" {
		query = query.Where("genres @> ?", jsonArray(filter.Genre))
	}
	if filter.Platform != "" {
		query = query.Where("platforms @> ?", jsonArray(filter.Platform))
	}
	if filter.Completed != nil {
		if *filter.Completed {
			query = query.Where("status = ?", models.StatusCompleted)
		} else {
			query = query.Where("status <> ?", models.StatusCompleted)
		}
	}

	var games []models.Game
	if err := query.Order("created_at DESC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gameRepository) Update(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Save(game).Error
}

// DeleteWithReviews removes the game and every review referencing it in one
// transaction, so a crash mid-sequence cannot strand orphaned reviews. The
// cascade deliberately has no ownership filter: the game record is gone, so
// other users' reviews of it go with it.
func (r *gameRepository) DeleteWithReviews(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", game.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(game).Error
	})
}

func jsonArray(value string) string {
	b, _ := json.Marshal([]string{value})
	return string(b)
}
