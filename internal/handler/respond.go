package handler

import (
	"errors"
	"log"
	"net/http"

	"gameshelf/internal/dto"
	"gameshelf/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError translates service errors to the wire taxonomy. Anything
// unrecognized is a 500 with a generic message; the detail stays in the log.
func respondError(c *gin.Context, err error) {
	switch {
	case service.IsValidationError(err):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, service.ErrEmailInUse):
		// 400 rather than 409 to preserve the wire contract.
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Fail(err.Error()))
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.Fail(err.Error()))
	case errors.Is(err, service.ErrGameNotFound), errors.Is(err, service.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(err.Error()))
	case errors.Is(err, service.ErrDuplicateReview):
		c.JSON(http.StatusConflict, dto.Fail(err.Error()))
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, dto.Fail("internal server error"))
	}
}

// currentUserID reads the identity the auth middleware injected.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, dto.Fail("user not authenticated"))
		return "", false
	}
	return userID.(string), true
}
