package handler

import (
	"net/http"

	"gameshelf/internal/dto"
	"gameshelf/internal/models"
	"gameshelf/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the auth routes under /auth.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)

		auth.GET("/me", requireAuth, h.Me)
		auth.POST("/logout", requireAuth, h.Logout)
	}
}

// Register creates a new user and returns an authentication token.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.PasswordConfirm)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "user registered successfully",
		Token:   token,
		User:    dto.FromModelToUserResponse(user),
	})
}

// Login authenticates a user by email and password and returns a new token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("please provide email and password"))
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "login successful",
		Token:   token,
		User:    dto.FromModelToUserResponse(user),
	})
}

// Me returns the authenticated user's own record.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, dto.Fail("user not authenticated"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.FromModelToUserResponse(user.(*models.User))))
}

// Logout acknowledges the end of a session, revoking the token when a
// denylist is configured.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if claims, exists := c.Get("claims"); exists {
		if err := h.authService.Logout(c.Request.Context(), claims.(*service.TokenClaims)); err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, dto.OKMessage("session closed", nil))
}
