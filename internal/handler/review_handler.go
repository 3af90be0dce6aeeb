package handler

import (
	"net/http"

	"gameshelf/internal/dto"
	"gameshelf/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers the review routes under /reviews. The public
// listing is the only resource route reachable without authentication.
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	reviews := router.Group("/reviews")
	{
		reviews.GET("/public/all", h.ListAllPublic)

		reviews.GET("", requireAuth, h.ListMine)
		reviews.GET("/game/:gameId", requireAuth, h.ListByGame)
		reviews.POST("", requireAuth, h.Create)
		reviews.PUT("/:id", requireAuth, h.Update)
		reviews.DELETE("/:id", requireAuth, h.Delete)
	}
}

// ListAllPublic returns every review across all users, with game and
// reviewer identity expanded. No pagination; the whole store is returned.
// GET /api/reviews/public/all
func (h *ReviewHandler) ListAllPublic(c *gin.Context) {
	reviews, err := h.reviewService.ListAllPublic(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := dto.FromModelsToReviewResponses(reviews)
	c.JSON(http.StatusOK, dto.OKList(responses, len(responses)))
}

// ListMine returns the caller's reviews with their games expanded.
// GET /api/reviews
func (h *ReviewHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := dto.FromModelsToReviewResponses(reviews)
	c.JSON(http.StatusOK, dto.OKList(responses, len(responses)))
}

// ListByGame returns all reviews for a game, regardless of review owner.
// GET /api/reviews/game/:gameId
func (h *ReviewHandler) ListByGame(c *gin.Context) {
	reviews, err := h.reviewService.ListByGame(c.Request.Context(), c.Param("gameId"))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := dto.FromModelsToReviewResponses(reviews)
	c.JSON(http.StatusOK, dto.OKList(responses, len(responses)))
}

// Create stores a review for one of the caller's games.
// POST /api/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("review created successfully", dto.FromModelToReviewResponse(review)))
}

// Update applies a partial update to one of the caller's reviews.
// PUT /api/reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("review updated successfully", dto.FromModelToReviewResponse(review)))
}

// Delete removes one of the caller's reviews.
// DELETE /api/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	review, err := h.reviewService.Delete(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("review deleted successfully", dto.FromModelToReviewResponse(review)))
}
