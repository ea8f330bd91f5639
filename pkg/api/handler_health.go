package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthHandler handles GET /health. Unauthenticated: load balancers and
// probes hit it without keys.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, dbErr := s.db.Health(ctx)

	resp := gin.H{
		"status":   "ok",
		"database": dbHealth,
	}
	if s.pool != nil {
		resp["pool"] = s.pool.Health(ctx)
	}

	if dbErr != nil {
		resp["status"] = "unhealthy"
		resp["error"] = dbErr.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
