// Package api exposes the research service over HTTP: session CRUD,
// report download, live event streaming (SSE and WebSocket), and admin key
// management. All routes except /health require an API key.
package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/database"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/queue"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/services"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/session"
)

// PoolHealthReporter is the slice of the worker pool the health endpoint
// needs. *queue.WorkerPool satisfies it.
type PoolHealthReporter interface {
	Health(ctx context.Context) queue.PoolHealth
}

// Config carries the API server's tunables.
type Config struct {
	RateLimitPerMinute int

	// Origin patterns accepted on WebSocket upgrades. Empty allows any
	// origin, which suits same-host dashboards and CLI clients.
	AllowedWSOrigins []string
}

// Server wires the HTTP surface to the service layer.
type Server struct {
	sessionService *services.SessionService
	registry       *session.Registry
	bus            *events.Bus
	db             *database.Client
	pool           PoolHealthReporter
	keys           *KeyStore
	rateLimit      *rateLimiter
	ws             *events.ConnectionManager
	wsOrigins      []string
}

// NewServer creates the API server. pool may be nil (health reports the
// pool as absent); everything else is required.
func NewServer(sessionService *services.SessionService, registry *session.Registry, bus *events.Bus, db *database.Client, pool PoolHealthReporter, keys *KeyStore, cfg Config) *Server {
	if cfg.RateLimitPerMinute <= 0 {
		cfg.RateLimitPerMinute = 60
	}
	return &Server{
		sessionService: sessionService,
		registry:       registry,
		bus:            bus,
		db:             db,
		pool:           pool,
		keys:           keys,
		rateLimit:      newRateLimiter(cfg.RateLimitPerMinute),
		ws:             events.NewConnectionManager(bus, 10*time.Second),
		wsOrigins:      cfg.AllowedWSOrigins,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	r.GET("/health", s.healthHandler)

	authed := r.Group("/", s.authRequired(), s.rateLimited())
	{
		authed.POST("/api/sessions", s.createSessionHandler)
		authed.GET("/api/sessions", s.listSessionsHandler)
		authed.GET("/api/sessions/:id", s.getSessionHandler)
		authed.DELETE("/api/sessions/:id", s.cancelSessionHandler)
		authed.GET("/api/sessions/:id/report", s.getReportHandler)
		authed.GET("/api/sessions/:id/events", s.sessionEventsHandler)
		authed.GET("/ws/sessions/:id", s.sessionWSHandler)
		authed.GET("/ws/events", s.dashboardWSHandler)

		admin := authed.Group("/api/keys", adminOnly())
		admin.POST("", s.createKeyHandler)
		admin.GET("", s.listKeysHandler)
		admin.DELETE("/:id", s.revokeKeyHandler)
	}

	return r
}
