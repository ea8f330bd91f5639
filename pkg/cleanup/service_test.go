package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmhernandez2525/research-agent-sub001/ent/researchsession"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/checkpoint"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/database"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/models"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/services"
	testdb "github.com/dmhernandez2525/research-agent-sub001/test/database"
)

type fixture struct {
	client      *database.Client
	sessions    *services.SessionService
	eventLog    *events.Log
	checkpoints *checkpoint.Store
	service     *Service
}

func newFixture(t *testing.T, retentionDays int) *fixture {
	t.Helper()

	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client, nil,
		services.AdmissionLimits{MaxConcurrentSessions: 5, QueueLimit: 10})

	eventLog, err := events.NewLog(filepath.Join(t.TempDir(), "events"))
	require.NoError(t, err)

	checkpoints := checkpoint.NewStore(config.CheckpointConfig{
		Enabled:   true,
		Directory: filepath.Join(t.TempDir(), "checkpoints"),
	})

	cfg := &config.RetentionConfig{
		SessionRetentionDays: retentionDays,
		CleanupInterval:      time.Hour,
	}
	return &fixture{
		client:      client,
		sessions:    sessions,
		eventLog:    eventLog,
		checkpoints: checkpoints,
		service:     NewService(cfg, sessions, eventLog, checkpoints),
	}
}

// completedSession creates a session, completes it and backdates its
// completion timestamp by the given age.
func (f *fixture) completedSession(t *testing.T, query string, age time.Duration) string {
	t.Helper()
	ctx := context.Background()

	resp, err := f.sessions.CreateSession(ctx, models.CreateSessionRequest{Query: query})
	require.NoError(t, err)
	_, err = f.sessions.ClaimNextQueuedSession(ctx, "pod-1")
	require.NoError(t, err)
	require.NoError(t, f.sessions.CompleteSession(ctx, resp.ID,
		services.Completion{Status: researchsession.StatusCompleted}))

	err = f.client.Client.ResearchSession.UpdateOneID(resp.ID).
		SetCompletedAt(time.Now().Add(-age)).
		Exec(ctx)
	require.NoError(t, err)
	return resp.ID
}

func TestService_PurgesExpiredSessions(t *testing.T) {
	f := newFixture(t, 30)
	ctx := context.Background()

	expired := f.completedSession(t, "expired research", 40*24*time.Hour)
	recent := f.completedSession(t, "recent research", 24*time.Hour)

	require.NoError(t, f.eventLog.Append(events.Event{SessionID: expired, Type: events.EventTypeSessionStatus}))
	require.NoError(t, f.eventLog.Append(events.Event{SessionID: recent, Type: events.EventTypeSessionStatus}))
	_, err := f.checkpoints.Save(expired, map[string]string{"step": "search"}, 1, "search")
	require.NoError(t, err)
	_, err = f.checkpoints.Save(recent, map[string]string{"step": "plan"}, 0, "plan")
	require.NoError(t, err)

	f.service.RunOnce(ctx)

	expiredRow, err := f.client.Client.ResearchSession.Get(ctx, expired)
	require.NoError(t, err)
	assert.NotNil(t, expiredRow.DeletedAt)

	recentRow, err := f.client.Client.ResearchSession.Get(ctx, recent)
	require.NoError(t, err)
	assert.Nil(t, recentRow.DeletedAt)

	assert.NoFileExists(t, filepath.Join(f.eventLog.Dir(), expired+".jsonl"))
	assert.FileExists(t, filepath.Join(f.eventLog.Dir(), recent+".jsonl"))

	_, err = os.Stat(filepath.Join(f.checkpoints.Dir(), expired))
	assert.True(t, os.IsNotExist(err))
	_, err = f.checkpoints.Latest(recent)
	assert.NoError(t, err)
}

func TestService_RunOnceIsIdempotent(t *testing.T) {
	f := newFixture(t, 30)
	ctx := context.Background()

	f.completedSession(t, "expired research", 40*24*time.Hour)

	f.service.RunOnce(ctx)
	f.service.RunOnce(ctx)

	count, err := f.client.Client.ResearchSession.Query().
		Where(researchsession.DeletedAtNotNil()).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestService_StartStop(t *testing.T) {
	f := newFixture(t, 30)

	f.service.Start(context.Background())
	f.service.Stop()

	// Stop is safe to call again.
	f.service.Stop()
}

func TestService_NilArtifactStores(t *testing.T) {
	f := newFixture(t, 30)
	ctx := context.Background()

	expired := f.completedSession(t, "expired research", 40*24*time.Hour)

	bare := NewService(&config.RetentionConfig{SessionRetentionDays: 30, CleanupInterval: time.Hour},
		f.sessions, nil, nil)
	bare.RunOnce(ctx)

	row, err := f.client.Client.ResearchSession.Get(ctx, expired)
	require.NoError(t, err)
	assert.NotNil(t, row.DeletedAt)
}
