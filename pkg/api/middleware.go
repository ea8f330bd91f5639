package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// contextKeyAPIKey is the gin context key holding the authenticated key.
const contextKeyAPIKey = "api_key"

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// authRequired authenticates via the X-API-Key header, falling back to the
// api_key query parameter for clients that cannot set headers (WebSocket
// from browsers). 401 on missing or unknown keys.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := c.GetHeader("X-API-Key")
		if secret == "" {
			secret = c.Query("api_key")
		}
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing API key"})
			return
		}

		key, ok := s.keys.Authenticate(secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}

		s.keys.RecordRequest(key.ID)
		c.Set(contextKeyAPIKey, key)
		c.Next()
	}
}

// rateLimited enforces the per-key sliding window. Admin keys are exempt
// but still see the headers; everyone gets X-RateLimit-* on each response.
func (s *Server) rateLimited() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := currentKey(c)
		if key == nil {
			c.Next()
			return
		}
		if key.Admin {
			c.Header("X-RateLimit-Limit", strconv.Itoa(s.rateLimit.limit))
			c.Next()
			return
		}

		allowed, remaining, reset := s.rateLimit.allow(key.ID)
		c.Header("X-RateLimit-Limit", strconv.Itoa(s.rateLimit.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": fmt.Sprintf("rate limit of %d requests per minute exceeded", s.rateLimit.limit),
			})
			return
		}
		c.Next()
	}
}

// adminOnly rejects non-admin keys with 403.
func adminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := currentKey(c)
		if key == nil || !key.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin key required"})
			return
		}
		c.Next()
	}
}

// currentKey returns the authenticated key set by authRequired, or nil.
func currentKey(c *gin.Context) *APIKey {
	v, ok := c.Get(contextKeyAPIKey)
	if !ok {
		return nil
	}
	key, _ := v.(*APIKey)
	return key
}
