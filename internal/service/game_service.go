package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gameshelf/internal/dto"
	"gameshelf/internal/models"
	"gameshelf/internal/repository"

	"gorm.io/gorm"
)

type GameService interface {
	Create(ctx context.Context, userID string, req dto.CreateGameRequest) (*models.Game, error)
	List(ctx context.Context, userID string) ([]models.Game, error)
	Get(ctx context.Context, userID, id string) (*models.Game, error)
	Filter(ctx context.Context, userID string, query dto.GameFilterQuery) ([]models.Game, error)
	Update(ctx context.Context, userID, id string, req dto.UpdateGameRequest) (*models.Game, error)
	Delete(ctx context.Context, userID, id string) (*models.Game, error)
}

type gameService struct {
	gameRepo repository.GameRepository
}

func NewGameService(gameRepo repository.GameRepository) GameService {
	return &gameService{gameRepo: gameRepo}
}

// Create attaches the caller as owner and persists the game after validation.
func (s *gameService) Create(ctx context.Context, userID string, req dto.CreateGameRequest) (*models.Game, error) {
	game := &models.Game{
		UserID:      userID,
		Title:       req.Title,
		Genres:      req.Genres,
		Platforms:   req.Platforms,
		Year:        req.Year,
		Developer:   req.Developer,
		CoverURL:    req.CoverURL,
		Description: req.Description,
		Status:      req.Status,
		Note:        req.Note,
	}
	if game.CoverURL == "" {
		game.CoverURL = models.DefaultCoverURL
	}
	if game.Status == "" {
		game.Status = models.StatusNotStarted
	}
	if req.HoursPlayed != nil {
		game.HoursPlayed = *req.HoursPlayed
	}
	if req.Rating != nil {
		game.Rating = *req.Rating
	}

	if err := validateGame(game); err != nil {
		return nil, err
	}

	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *gameService) List(ctx context.Context, userID string) ([]models.Game, error) {
	return s.gameRepo.FindByOwner(ctx, userID)
}

func (s *gameService) Get(ctx context.Context, userID, id string) (*models.Game, error) {
	game, err := s.gameRepo.FindOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

func (s *gameService) Filter(ctx context.Context, userID string, query dto.GameFilterQuery) ([]models.Game, error) {
	filter := repository.GameFilter{
		Genre:    query.Genre,
		Platform: query.Platform,
	}
	if query.Completed != "" {
		completed := query.Completed == "true"
		filter.Completed = &completed
	}
	return s.gameRepo.Filter(ctx, userID, filter)
}

// Update merges the partial request into the owned record and re-validates
// the merged document before saving.
func (s *gameService) Update(ctx context.Context, userID, id string, req dto.UpdateGameRequest) (*models.Game, error) {
	game, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		game.Title = *req.Title
	}
	if req.Genres != nil {
		game.Genres = *req.Genres
	}
	if req.Platforms != nil {
		game.Platforms = *req.Platforms
	}
	if req.Year != nil {
		game.Year = *req.Year
	}
	if req.Developer != nil {
		game.Developer = *req.Developer
	}
	if req.CoverURL != nil {
		game.CoverURL = *req.CoverURL
	}
	if req.Description != nil {
		game.Description = *req.Description
	}
	if req.Status != nil {
		game.Status = *req.Status
	}
	if req.HoursPlayed != nil {
		game.HoursPlayed = *req.HoursPlayed
	}
	if req.Note != nil {
		game.Note = *req.Note
	}
	if req.Rating != nil {
		game.Rating = *req.Rating
	}

	if err := validateGame(game); err != nil {
		return nil, err
	}

	if err := s.gameRepo.Update(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// Delete removes the owned game and cascades its reviews; the deleted record
// is returned so the handler can echo it.
func (s *gameService) Delete(ctx context.Context, userID, id string) (*models.Game, error) {
	game, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.gameRepo.DeleteWithReviews(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func validateGame(game *models.Game) error {
	if game.Title == "" {
		return newValidationError("game title is required")
	}
	if game.Developer == "" {
		return newValidationError("developer is required")
	}
	for _, genre := range game.Genres {
		if !models.ValidGenre(genre) {
			return newValidationError("invalid genre: %s", genre)
		}
	}
	for _, platform := range game.Platforms {
		if !models.ValidPlatform(platform) {
			return newValidationError("invalid platform: %s", platform)
		}
	}
	maxYear := time.Now().Year() + 1
	if game.Year < 1980 || game.Year > maxYear {
		return newValidationError("year must be between 1980 and %s", strconv.Itoa(maxYear))
	}
	if !models.ValidStatus(game.Status) {
		return newValidationError("invalid status: %s", game.Status)
	}
	if game.HoursPlayed < 0 {
		return newValidationError("hours played cannot be negative")
	}
	if game.Rating < 0 || game.Rating > 5 {
		return newValidationError("rating must be between 0 and 5")
	}
	return nil
}
