package handler

import (
	"net/http"

	"gameshelf/internal/dto"
	"gameshelf/internal/service"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService service.GameService
}

func NewGameHandler(gameService service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// RegisterRoutes registers the game routes under /games. All of them require
// authentication; every operation is scoped to the caller's own library.
func (h *GameHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	games := router.Group("/games")
	games.Use(requireAuth)
	{
		games.GET("", h.List)
		games.GET("/filter", h.Filter) // must be before /:id
		games.GET("/:id", h.Get)
		games.POST("", h.Create)
		games.PUT("/:id", h.Update)
		games.DELETE("/:id", h.Delete)
	}
}

// List returns the caller's games, newest first.
// GET /api/games
func (h *GameHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	games, err := h.gameService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKList(games, len(games)))
}

// Filter returns the caller's games matching the query filters.
// GET /api/games/filter?genre=&platform=&completed=
func (h *GameHandler) Filter(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query dto.GameFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	games, err := h.gameService.Filter(c.Request.Context(), userID, query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKList(games, len(games)))
}

// Get returns one of the caller's games by id.
// GET /api/games/:id
func (h *GameHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	game, err := h.gameService.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(game))
}

// Create adds a game to the caller's library.
// POST /api/games
func (h *GameHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	game, err := h.gameService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("game added successfully", game))
}

// Update applies a partial update to one of the caller's games.
// PUT /api/games/:id
func (h *GameHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	game, err := h.gameService.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("game updated successfully", game))
}

// Delete removes one of the caller's games and cascades its reviews.
// DELETE /api/games/:id
func (h *GameHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	game, err := h.gameService.Delete(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("game deleted successfully", game))
}
