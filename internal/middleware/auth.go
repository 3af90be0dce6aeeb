package middleware

import (
	"net/http"
	"strings"

	"gameshelf/internal/dto"
	"gameshelf/internal/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextUserIDKey = "userID"
	ContextUserKey   = "currentUser"
	ContextClaimsKey = "claims"
)

const unauthorizedMessage = "not authorized to access this route"

// RequireAuth is a Gin middleware that authenticates API requests.
// It resolves the bearer token to a live user record and injects the
// identity into the request context; every rejection is the same generic
// 401 so callers cannot probe why a token failed.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(unauthorizedMessage))
			return
		}

		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(unauthorizedMessage))
			return
		}

		claims, err := authService.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(unauthorizedMessage))
			return
		}

		// The user may have been deleted after the token was issued.
		user, err := authService.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("user not found"))
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUserKey, user)
		c.Set(ContextClaimsKey, claims)

		c.Next()
	}
}
