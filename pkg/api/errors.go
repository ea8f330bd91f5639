package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/services"
)

// abortWithServiceError maps service-layer errors to HTTP error responses.
func abortWithServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrNotCancellable):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "session is not in a cancellable state"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, services.ErrQueueOverflow):
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": services.ErrQueueOverflow.Error()})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
