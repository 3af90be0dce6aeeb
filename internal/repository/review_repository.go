package repository

import (
	"context"

	"gameshelf/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data operations.
// Read paths that expand the game join on games, so a review whose game has
// been deleted never appears in results.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindOwned(ctx context.Context, id, userID string) (*models.Review, error)
	FindByOwner(ctx context.Context, userID string) ([]models.Review, error)
	FindByOwnerAndGame(ctx context.Context, userID, gameID string) (*models.Review, error)
	FindByGame(ctx context.Context, gameID string) ([]models.Review, error)
	FindAll(ctx context.Context) ([]models.Review, error)
	FindExpanded(ctx context.Context, id string) (*models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, review *models.Review) error
}

// reviewRepository is the GORM implementation of ReviewRepository.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new instance of ReviewRepository in a GORM implementation
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		// Two requests can both pass the service-level existence check; the
		// (user_id, game_id) unique index settles the race.
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *reviewRepository) FindOwned(ctx context.Context, id, userID string) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByOwner(ctx context.Context, userID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.expanded(ctx).
		Where("reviews.user_id = ?", userID).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindByOwnerAndGame(ctx context.Context, userID, gameID string) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByGame(ctx context.Context, gameID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.expanded(ctx).
		Where("reviews.game_id = ?", gameID).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.expanded(ctx).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindExpanded loads a single review with its game and reviewer attached,
// without an ownership filter. Used to echo a freshly created review.
func (r *reviewRepository) FindExpanded(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	err := r.expanded(ctx).
		Where("reviews.id = ?", id).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Delete(review).Error
}

// expanded builds the shared read query: newest first, game and reviewer
// preloaded, and an inner join on games that drops dangling references.
func (r *reviewRepository) expanded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Joins("JOIN games ON games.id = reviews.game_id").
		Preload("Game").
		Preload("User").
		Order("reviews.created_at DESC")
}
