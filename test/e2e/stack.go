package e2e

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmhernandez2525/research-agent-sub001/ent"
	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/api"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/models"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/queue"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/services"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/session"
	testdb "github.com/dmhernandez2525/research-agent-sub001/test/database"
)

// stack is the full server assembly against a real Postgres: session
// service, worker pool, event bus, and the HTTP API. factory may be nil
// when a scenario never starts the pool.
type stack struct {
	client   *ent.Client
	registry *session.Registry
	service  *services.SessionService
	bus      *events.Bus
	pool     *queue.WorkerPool
	server   *httptest.Server
	apiKey   string
}

func fastQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             1,
		MaxConcurrentSessions:   1,
		PollInterval:            20 * time.Millisecond,
		PollIntervalJitter:      0,
		SessionTimeout:          30 * time.Second,
		GracefulShutdownTimeout: 2 * time.Second,
		HeartbeatInterval:       20 * time.Millisecond,
		OrphanDetectionInterval: 40 * time.Millisecond,
		OrphanThreshold:         time.Minute,
	}
}

func newStack(t *testing.T, limits services.AdmissionLimits, factory queue.RunnerFactory) *stack {
	t.Helper()

	db := testdb.NewTestClient(t)
	registry := session.NewRegistry()
	service := services.NewSessionService(db.Client, registry, limits)

	bus := events.NewBus(nil, nil)
	t.Cleanup(bus.Close)

	s := &stack{
		client:   db.Client,
		registry: registry,
		service:  service,
		bus:      bus,
	}

	if factory != nil {
		cfg := fastQueueConfig()
		cfg.MaxConcurrentSessions = limits.MaxConcurrentSessions
		s.pool = queue.NewWorkerPool("pod-e2e", service, registry, bus, factory, cfg)
		require.NoError(t, s.pool.Start(context.Background()))
		t.Cleanup(s.pool.Stop)
	}

	keys, err := api.NewKeyStore(filepath.Join(t.TempDir(), "keys.json"))
	require.NoError(t, err)
	key, err := keys.Create("e2e", false)
	require.NoError(t, err)
	s.apiKey = key.Key

	srv := api.NewServer(service, registry, bus, db, s.pool, keys, api.Config{RateLimitPerMinute: 1000})
	s.server = httptest.NewServer(srv.Router())
	t.Cleanup(s.server.Close)

	return s
}

func (s *stack) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, s.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("X-API-Key", s.apiKey)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func (s *stack) createSession(t *testing.T, req models.CreateSessionRequest) string {
	t.Helper()
	resp, err := s.service.CreateSession(context.Background(), req)
	require.NoError(t, err)
	return resp.ID
}

func (s *stack) waitForStatus(t *testing.T, sessionID string, want researchsession.Status) *ent.ResearchSession {
	t.Helper()
	var row *ent.ResearchSession
	require.Eventually(t, func() bool {
		var err error
		row, err = s.client.ResearchSession.Get(context.Background(), sessionID)
		return err == nil && row.Status == want
	}, 15*time.Second, 25*time.Millisecond, "session never reached status %s", want)
	return row
}
