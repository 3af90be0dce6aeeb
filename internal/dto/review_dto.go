package dto

import (
	"time"

	"gameshelf/internal/models"
)

// CreateReviewRequest: payload for reviewing a caller-owned game
type CreateReviewRequest struct {
	GameID      string   `json:"gameId" binding:"required"`
	Score       int      `json:"score" binding:"required,min=1,max=5"`
	Text        string   `json:"text" binding:"required,max=2000"`
	HoursPlayed *float64 `json:"hoursPlayed" binding:"required"`
	Difficulty  string   `json:"difficulty" binding:"required"`
	Recommend   *bool    `json:"recommend"`
}

// UpdateReviewRequest: partial update; nil fields are left untouched
type UpdateReviewRequest struct {
	Score       *int     `json:"score"`
	Text        *string  `json:"text"`
	HoursPlayed *float64 `json:"hoursPlayed"`
	Difficulty  *string  `json:"difficulty"`
	Recommend   *bool    `json:"recommend"`
}

// ReviewResponse: a review with its game reference expanded and, on shared
// read paths, the reviewer's public identity
type ReviewResponse struct {
	ID          string        `json:"id"`
	Score       int           `json:"score"`
	Text        string        `json:"text"`
	HoursPlayed float64       `json:"hoursPlayed"`
	Difficulty  string        `json:"difficulty"`
	Recommend   bool          `json:"recommend"`
	Game        *models.Game  `json:"game,omitempty"`
	User        *UserResponse `json:"user,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// FromModelToReviewResponse converts a Review model to its response view.
// The reviewer identity is included only when the User association is loaded.
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	resp := &ReviewResponse{
		ID:          review.ID,
		Score:       review.Score,
		Text:        review.Text,
		HoursPlayed: review.HoursPlayed,
		Difficulty:  review.Difficulty,
		Recommend:   review.Recommend,
		Game:        review.Game,
		CreatedAt:   review.CreatedAt,
		UpdatedAt:   review.UpdatedAt,
	}
	if review.User != nil {
		user := FromModelToUserResponse(review.User)
		resp.User = &user
	}
	return resp
}

// FromModelsToReviewResponses converts a slice of reviews.
func FromModelsToReviewResponses(reviews []models.Review) []*ReviewResponse {
	responses := make([]*ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, FromModelToReviewResponse(&reviews[i]))
	}
	return responses
}
