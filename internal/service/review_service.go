package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"gameshelf/internal/dto"
	"gameshelf/internal/models"
	"gameshelf/internal/repository"

	"gorm.io/gorm"
)

type ReviewService interface {
	Create(ctx context.Context, userID string, req dto.CreateReviewRequest) (*models.Review, error)
	ListMine(ctx context.Context, userID string) ([]models.Review, error)
	ListByGame(ctx context.Context, gameID string) ([]models.Review, error)
	ListAllPublic(ctx context.Context) ([]models.Review, error)
	Update(ctx context.Context, userID, id string, req dto.UpdateReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, userID, id string) (*models.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	gameRepo   repository.GameRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, gameRepo repository.GameRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		gameRepo:   gameRepo,
	}
}

// Create stores a review for a caller-owned game. Reviewing someone else's
// game reports not-found, exactly like a game that does not exist.
func (s *reviewService) Create(ctx context.Context, userID string, req dto.CreateReviewRequest) (*models.Review, error) {
	if _, err := s.gameRepo.FindOwned(ctx, req.GameID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	// Existence check for the friendly conflict message; the unique index on
	// (user_id, game_id) settles concurrent duplicates.
	if _, err := s.reviewRepo.FindByOwnerAndGame(ctx, userID, req.GameID); err == nil {
		return nil, ErrDuplicateReview
	}

	review := &models.Review{
		UserID:     userID,
		GameID:     req.GameID,
		Score:      req.Score,
		Text:       req.Text,
		Difficulty: req.Difficulty,
		Recommend:  true,
	}
	if req.HoursPlayed != nil {
		review.HoursPlayed = *req.HoursPlayed
	}
	if req.Recommend != nil {
		review.Recommend = *req.Recommend
	}

	if err := validateReview(review); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}

	// Echo the review with its game reference resolved.
	return s.reviewRepo.FindExpanded(ctx, review.ID)
}

func (s *reviewService) ListMine(ctx context.Context, userID string) ([]models.Review, error) {
	return s.reviewRepo.FindByOwner(ctx, userID)
}

func (s *reviewService) ListByGame(ctx context.Context, gameID string) ([]models.Review, error) {
	return s.reviewRepo.FindByGame(ctx, gameID)
}

func (s *reviewService) ListAllPublic(ctx context.Context) ([]models.Review, error) {
	return s.reviewRepo.FindAll(ctx)
}

// Update merges the partial request into the caller's review and re-validates.
func (s *reviewService) Update(ctx context.Context, userID, id string, req dto.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Score != nil {
		review.Score = *req.Score
	}
	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.HoursPlayed != nil {
		review.HoursPlayed = *req.HoursPlayed
	}
	if req.Difficulty != nil {
		review.Difficulty = *req.Difficulty
	}
	if req.Recommend != nil {
		review.Recommend = *req.Recommend
	}

	if err := validateReview(review); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return s.reviewRepo.FindExpanded(ctx, review.ID)
}

// Delete removes the caller's review and returns the deleted record.
func (s *reviewService) Delete(ctx context.Context, userID, id string) (*models.Review, error) {
	review, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Delete(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) findOwned(ctx context.Context, userID, id string) (*models.Review, error) {
	review, err := s.reviewRepo.FindOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func validateReview(review *models.Review) error {
	if review.Score < 1 || review.Score > 5 {
		return newValidationError("score must be between 1 and 5")
	}
	if review.Text == "" {
		return newValidationError("review text is required")
	}
	// Characters, not bytes: the create-path binding counts runes too.
	if utf8.RuneCountInString(review.Text) > models.MaxReviewTextLength {
		return newValidationError("review text cannot exceed %d characters", models.MaxReviewTextLength)
	}
	if review.HoursPlayed < 0 {
		return newValidationError("hours played cannot be negative")
	}
	if !models.ValidDifficulty(review.Difficulty) {
		return newValidationError("invalid difficulty: %s", review.Difficulty)
	}
	return nil
}
