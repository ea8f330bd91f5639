package e2e

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/events"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/models"
	"github.com/dmhernandez2525/research-agent-sub001/pkg/services"
)

// A client reconnecting with Last-Event-ID: 3 gets the missed events 4
// and 5 replayed, then stays attached for live event 6 on the same
// stream.
func TestSSEReplayThenLiveTail(t *testing.T) {
	s := newStack(t, services.AdmissionLimits{MaxConcurrentSessions: 3, QueueLimit: 10}, nil)
	sessionID := s.createSession(t, models.CreateSessionRequest{Query: "sse replay test"})

	// Events 1..5 land before the client connects.
	for i := 1; i <= 5; i++ {
		s.bus.PublishStepStart(sessionID, events.StepStartPayload{
			Step: fmt.Sprintf("step-%d", i), StepIndex: i,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.server.URL+"/api/sessions/"+sessionID+"/events", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", s.apiKey)
	req.Header.Set("Last-Event-ID", "3")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	type frame struct {
		id   string
		data string
	}
	frames := make(chan frame)
	go func() {
		defer close(frames)
		var current frame
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case len(line) > 4 && line[:4] == "id: ":
				current.id = line[4:]
			case len(line) > 6 && line[:6] == "data: ":
				current.data = line[6:]
			case line == "" && current.id != "":
				frames <- current
				current = frame{}
			}
		}
	}()

	next := func() frame {
		select {
		case f, ok := <-frames:
			require.True(t, ok, "stream closed before the expected frame")
			return f
		case <-ctx.Done():
			t.Fatal("timed out waiting for an SSE frame")
			return frame{}
		}
	}

	// Missed events replay in order, nothing before the cursor.
	assert.Equal(t, "4", next().id)
	assert.Equal(t, "5", next().id)

	// A live event arrives on the same connection.
	s.bus.PublishStepStart(sessionID, events.StepStartPayload{Step: "step-6", StepIndex: 6})
	live := next()
	assert.Equal(t, "6", live.id)

	var evt events.Event
	require.NoError(t, json.Unmarshal([]byte(live.data), &evt))
	assert.Equal(t, sessionID, evt.SessionID)
	assert.Equal(t, events.EventTypeStepStart, evt.Type)
	assert.Equal(t, "step-6", evt.Payload["step"])
}
