package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skorolev/taskkeeper/internal/common"
)

// writeError is the single translation point from service error kinds to
// transport responses. Unexpected errors are logged with their detail and
// surfaced to the client as an opaque 500.
func (s *HTTPServer) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		s.logger.Error(c.Request.Context(), "request failed",
			"error", err.Error(),
			"path", c.FullPath(),
			"request_id", c.GetString(requestIDContextKey),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
