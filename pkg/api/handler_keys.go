package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type createKeyRequest struct {
	Name  string `json:"name" binding:"required"`
	Admin bool   `json:"admin"`
}

// createKeyHandler handles POST /api/keys (admin only). The response is
// the only place the full secret ever appears.
func (s *Server) createKeyHandler(c *gin.Context) {
	var req createKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	key, err := s.keys.Create(req.Name, req.Admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create key"})
		return
	}
	c.JSON(http.StatusCreated, key)
}

// listKeysHandler handles GET /api/keys (admin only). Secrets are masked.
func (s *Server) listKeysHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"keys": s.keys.List()})
}

// revokeKeyHandler handles DELETE /api/keys/:id (admin only).
func (s *Server) revokeKeyHandler(c *gin.Context) {
	if err := s.keys.Revoke(c.Param("id")); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "key not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke key"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "revoked"})
}
