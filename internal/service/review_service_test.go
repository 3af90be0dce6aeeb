package service

import (
	"context"
	"strings"
	"testing"

	"gameshelf/internal/dto"
	"gameshelf/internal/models"
	"gameshelf/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindOwned(ctx context.Context, id, userID string) (*models.Review, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByOwner(ctx context.Context, userID string) ([]models.Review, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByOwnerAndGame(ctx context.Context, userID, gameID string) (*models.Review, error) {
	args := m.Called(ctx, userID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByGame(ctx context.Context, gameID string) ([]models.Review, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindExpanded(ctx context.Context, id string) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func validReviewRequest() dto.CreateReviewRequest {
	hours := 10.0
	return dto.CreateReviewRequest{
		GameID:      "game-1",
		Score:       5,
		Text:        "great",
		HoursPlayed: &hours,
		Difficulty:  models.DifficultyHard,
	}
}

func ownedGame() *models.Game {
	return &models.Game{ID: "game-1", UserID: "owner-1", Title: "Celeste"}
}

func TestReviewCreate_Success(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockGames := new(MockGameRepository)
	reviewService := NewReviewService(mockReviews, mockGames)

	mockGames.On("FindOwned", mock.Anything, "game-1", "owner-1").Return(ownedGame(), nil)
	mockReviews.On("FindByOwnerAndGame", mock.Anything, "owner-1", "game-1").Return(nil, gorm.ErrRecordNotFound)
	mockReviews.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Review).ID = "review-1"
	}).Return(nil)
	expanded := &models.Review{ID: "review-1", UserID: "owner-1", GameID: "game-1", Score: 5, Game: ownedGame()}
	mockReviews.On("FindExpanded", mock.Anything, "review-1").Return(expanded, nil)

	review, err := reviewService.Create(context.Background(), "owner-1", validReviewRequest())

	assert.NoError(t, err)
	assert.Equal(t, "review-1", review.ID)
	assert.NotNil(t, review.Game)
	mockReviews.AssertExpectations(t)
}

func TestReviewCreate_DefaultsRecommendTrue(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockGames := new(MockGameRepository)
	reviewService := NewReviewService(mockReviews, mockGames)

	mockGames.On("FindOwned", mock.Anything, "game-1", "owner-1").Return(ownedGame(), nil)
	mockReviews.On("FindByOwnerAndGame", mock.Anything, "owner-1", "game-1").Return(nil, gorm.ErrRecordNotFound)

	var created *models.Review
	mockReviews.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.Review)
		created.ID = "review-1"
	}).Return(nil)
	mockReviews.On("FindExpanded", mock.Anything, "review-1").Return(&models.Review{ID: "review-1"}, nil)

	_, err := reviewService.Create(context.Background(), "owner-1", validReviewRequest())

	assert.NoError(t, err)
	assert.True(t, created.Recommend)
}

func TestReviewCreate_UnownedGameIsNotFound(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockGames := new(MockGameRepository)
	reviewService := NewReviewService(mockReviews, mockGames)

	// The game exists but belongs to someone else: same miss as no game at all.
	mockGames.On("FindOwned", mock.Anything, "game-1", "intruder").Return(nil, gorm.ErrRecordNotFound)

	_, err := reviewService.Create(context.Background(), "intruder", validReviewRequest())

	assert.ErrorIs(t, err, ErrGameNotFound)
	mockReviews.AssertNotCalled(t, "Create")
}

func TestReviewCreate_DuplicateIsConflict(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockGames := new(MockGameRepository)
	reviewService := NewReviewService(mockReviews, mockGames)

	mockGames.On("FindOwned", mock.Anything, "game-1", "owner-1").Return(ownedGame(), nil)
	existing := &models.Review{ID: "review-1", UserID: "owner-1", GameID: "game-1"}
	mockReviews.On("FindByOwnerAndGame", mock.Anything, "owner-1", "game-1").Return(existing, nil)

	_, err := reviewService.Create(context.Background(), "owner-1", validReviewRequest())

	assert.ErrorIs(t, err, ErrDuplicateReview)
	mockReviews.AssertNotCalled(t, "Create")
}

func TestReviewCreate_RacedDuplicateIsConflict(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockGames := new(MockGameRepository)
	reviewService := NewReviewService(mockReviews, mockGames)

	mockGames.On("FindOwned", mock.Anything, "game-1", "owner-1").Return(ownedGame(), nil)
	// The existence check passes, but a concurrent insert won the race and
	// the unique index rejects this one.
	mockReviews.On("FindByOwnerAndGame", mock.Anything, "owner-1", "game-1").Return(nil, gorm.ErrRecordNotFound)
	mockReviews.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).Return(repository.ErrDuplicateKey)

	_, err := reviewService.Create(context.Background(), "owner-1", validReviewRequest())

	assert.ErrorIs(t, err, ErrDuplicateReview)
}

func TestReviewCreate_RejectsInvalidDifficulty(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockGames := new(MockGameRepository)
	reviewService := NewReviewService(mockReviews, mockGames)

	mockGames.On("FindOwned", mock.Anything, "game-1", "owner-1").Return(ownedGame(), nil)
	mockReviews.On("FindByOwnerAndGame", mock.Anything, "owner-1", "game-1").Return(nil, gorm.ErrRecordNotFound)

	req := validReviewRequest()
	req.Difficulty = "nightmare"

	_, err := reviewService.Create(context.Background(), "owner-1", req)

	assert.True(t, IsValidationError(err))
	mockReviews.AssertNotCalled(t, "Create")
}

func TestReviewCreate_RejectsOversizedText(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockGames := new(MockGameRepository)
	reviewService := NewReviewService(mockReviews, mockGames)

	mockGames.On("FindOwned", mock.Anything, "game-1", "owner-1").Return(ownedGame(), nil)
	mockReviews.On("FindByOwnerAndGame", mock.Anything, "owner-1", "game-1").Return(nil, gorm.ErrRecordNotFound)

	req := validReviewRequest()
	req.Text = strings.Repeat("a", models.MaxReviewTextLength+1)

	_, err := reviewService.Create(context.Background(), "owner-1", req)

	assert.True(t, IsValidationError(err))
}

func TestReviewUpdate_CountsTextLengthInRunes(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	reviewService := NewReviewService(mockReviews, new(MockGameRepository))

	stored := &models.Review{
		ID: "review-1", UserID: "owner-1", GameID: "game-1",
		Score: 5, Text: "great", HoursPlayed: 10, Difficulty: models.DifficultyHard, Recommend: true,
	}
	mockReviews.On("FindOwned", mock.Anything, "review-1", "owner-1").Return(stored, nil)
	mockReviews.On("Update", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil)
	mockReviews.On("FindExpanded", mock.Anything, "review-1").Return(stored, nil)

	// 2000 two-byte runes: over the limit in bytes, exactly at it in characters.
	text := strings.Repeat("é", models.MaxReviewTextLength)
	review, err := reviewService.Update(context.Background(), "owner-1", "review-1", dto.UpdateReviewRequest{Text: &text})

	assert.NoError(t, err)
	assert.Equal(t, text, review.Text)

	over := strings.Repeat("é", models.MaxReviewTextLength+1)
	_, err = reviewService.Update(context.Background(), "owner-1", "review-1", dto.UpdateReviewRequest{Text: &over})

	assert.True(t, IsValidationError(err))
}

func TestReviewUpdate_OnlyAuthorsOwn(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	reviewService := NewReviewService(mockReviews, new(MockGameRepository))

	mockReviews.On("FindOwned", mock.Anything, "review-1", "intruder").Return(nil, gorm.ErrRecordNotFound)

	score := 1
	_, err := reviewService.Update(context.Background(), "intruder", "review-1", dto.UpdateReviewRequest{Score: &score})

	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewUpdate_MergesAndRevalidates(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	reviewService := NewReviewService(mockReviews, new(MockGameRepository))

	stored := &models.Review{
		ID: "review-1", UserID: "owner-1", GameID: "game-1",
		Score: 5, Text: "great", HoursPlayed: 10, Difficulty: models.DifficultyHard, Recommend: true,
	}
	mockReviews.On("FindOwned", mock.Anything, "review-1", "owner-1").Return(stored, nil)
	mockReviews.On("Update", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil)
	mockReviews.On("FindExpanded", mock.Anything, "review-1").Return(stored, nil)

	score := 3
	review, err := reviewService.Update(context.Background(), "owner-1", "review-1", dto.UpdateReviewRequest{Score: &score})

	assert.NoError(t, err)
	assert.Equal(t, 3, review.Score)
	assert.Equal(t, "great", review.Text)
}

func TestReviewUpdate_RejectsOutOfRangeScore(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	reviewService := NewReviewService(mockReviews, new(MockGameRepository))

	stored := &models.Review{
		ID: "review-1", UserID: "owner-1", GameID: "game-1",
		Score: 5, Text: "great", HoursPlayed: 10, Difficulty: models.DifficultyHard,
	}
	mockReviews.On("FindOwned", mock.Anything, "review-1", "owner-1").Return(stored, nil)

	score := 6
	_, err := reviewService.Update(context.Background(), "owner-1", "review-1", dto.UpdateReviewRequest{Score: &score})

	assert.True(t, IsValidationError(err))
	mockReviews.AssertNotCalled(t, "Update")
}

func TestReviewDelete_ReturnsDeletedReview(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	reviewService := NewReviewService(mockReviews, new(MockGameRepository))

	stored := &models.Review{ID: "review-1", UserID: "owner-1", GameID: "game-1"}
	mockReviews.On("FindOwned", mock.Anything, "review-1", "owner-1").Return(stored, nil)
	mockReviews.On("Delete", mock.Anything, stored).Return(nil)

	review, err := reviewService.Delete(context.Background(), "owner-1", "review-1")

	assert.NoError(t, err)
	assert.Equal(t, "review-1", review.ID)
	mockReviews.AssertExpectations(t)
}
