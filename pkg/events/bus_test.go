package events

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recvEvent reads one event from a subscription with a timeout so a broken
// fan-out fails the test instead of hanging it.
func recvEvent(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case evt, ok := <-sub.C:
		require.True(t, ok, "subscription closed unexpectedly")
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestBusPublishAssignsMonotonicIDs(t *testing.T) {
	bus := NewBus(nil, nil)

	e1 := bus.PublishStepStart("session-1", StepStartPayload{Step: "plan", StepIndex: 0})
	e2 := bus.PublishStepEnd("session-1", StepEndPayload{Step: "plan", StepIndex: 0, DurationMs: 12})
	e3 := bus.PublishSessionStatus("session-2", SessionStatusPayload{Status: "running"})

	assert.Equal(t, int64(1), e1.ID)
	assert.Equal(t, int64(2), e2.ID)
	assert.Equal(t, int64(3), e3.ID)

	// Timestamps are RFC3339Nano
	_, err := time.Parse(time.RFC3339Nano, e1.Timestamp)
	require.NoError(t, err)
}

func TestBusTypedPayloadShape(t *testing.T) {
	bus := NewBus(nil, nil)

	evt := bus.PublishStepEnd("session-1", StepEndPayload{
		Step:       "search",
		StepIndex:  1,
		DurationMs: 340,
		CostUSD:    0.0123,
	})

	assert.Equal(t, EventTypeStepEnd, evt.Type)
	assert.Equal(t, "search", evt.Payload["step"])
	// JSON round trip turns numbers into float64
	assert.Equal(t, float64(1), evt.Payload["step_index"])
	assert.Equal(t, float64(340), evt.Payload["duration_ms"])
	assert.InDelta(t, 0.0123, evt.Payload["cost_usd"], 1e-9)
}

func TestBusSubscribeCatchupThenLive(t *testing.T) {
	bus := NewBus(nil, nil)

	// Publish events 1..5
	for i := 0; i < 5; i++ {
		bus.PublishStepStart("session-1", StepStartPayload{Step: "plan", StepIndex: i})
	}

	// Subscriber connects having seen up to event 3
	sub := bus.Subscribe("session-1", 3)
	defer sub.Close()

	// Live event 6 arrives after subscription
	bus.PublishStepEnd("session-1", StepEndPayload{Step: "plan", StepIndex: 5})

	assert.Equal(t, int64(4), recvEvent(t, sub).ID)
	assert.Equal(t, int64(5), recvEvent(t, sub).ID)
	assert.Equal(t, int64(6), recvEvent(t, sub).ID)
}

func TestBusSubscribeFromZeroGetsEverything(t *testing.T) {
	bus := NewBus(nil, nil)
	bus.PublishSessionStatus("session-1", SessionStatusPayload{Status: "queued"})
	bus.PublishSessionStatus("session-1", SessionStatusPayload{Status: "running"})

	sub := bus.Subscribe("session-1", 0)
	defer sub.Close()

	assert.Equal(t, int64(1), recvEvent(t, sub).ID)
	assert.Equal(t, int64(2), recvEvent(t, sub).ID)
}

func TestBusSubscriptionIsPerSession(t *testing.T) {
	bus := NewBus(nil, nil)
	sub := bus.Subscribe("session-1", 0)
	defer sub.Close()

	bus.PublishStepStart("session-2", StepStartPayload{Step: "plan"})
	bus.PublishStepStart("session-1", StepStartPayload{Step: "search"})

	evt := recvEvent(t, sub)
	assert.Equal(t, "session-1", evt.SessionID)
	assert.Equal(t, "search", evt.Payload["step"])
}

func TestBusGlobalSubscriptionSeesAllSessions(t *testing.T) {
	bus := NewBus(nil, nil)
	sub := bus.SubscribeGlobal()
	defer sub.Close()

	bus.PublishSessionStatus("session-1", SessionStatusPayload{Status: "running"})
	bus.PublishSessionStatus("session-2", SessionStatusPayload{Status: "queued"})

	assert.Equal(t, "session-1", recvEvent(t, sub).SessionID)
	assert.Equal(t, "session-2", recvEvent(t, sub).SessionID)
}

func TestBusRingCapsAtRingSize(t *testing.T) {
	bus := NewBus(nil, nil)

	for i := 0; i < DefaultRingSize+50; i++ {
		bus.PublishStepStart("session-1", StepStartPayload{Step: "search", StepIndex: i})
	}

	history := bus.History("session-1", 0)
	require.Len(t, history, DefaultRingSize)
	// Oldest events were evicted
	assert.Equal(t, int64(51), history[0].ID)
	assert.Equal(t, int64(DefaultRingSize+50), history[len(history)-1].ID)
}

func TestBusSlowSubscriberDropsOldest(t *testing.T) {
	bus := NewBus(nil, nil)
	sub := bus.SubscribeLive("session-1")
	defer sub.Close()

	total := DefaultRingSize + subscriberExtra + 36
	for i := 0; i < total; i++ {
		bus.PublishStepStart("session-1", StepStartPayload{Step: "search", StepIndex: i})
	}

	// The buffer holds the newest events; the oldest were dropped.
	var got []Event
drain:
	for {
		select {
		case evt := <-sub.C:
			got = append(got, evt)
		default:
			break drain
		}
	}

	require.Len(t, got, DefaultRingSize+subscriberExtra)
	assert.Equal(t, int64(37), got[0].ID)
	assert.Equal(t, int64(total), got[len(got)-1].ID)
}

type fakeMasker struct{}

func (fakeMasker) Mask(s string) string {
	return strings.ReplaceAll(s, "sk-secret", "***MASKED_API_KEY***")
}

func TestBusMasksPayloadStrings(t *testing.T) {
	bus := NewBus(nil, fakeMasker{})

	evt := bus.Publish("session-1", EventTypeStepError, map[string]any{
		"error": "auth failed for sk-secret",
		"nested": map[string]any{
			"detail": "key sk-secret rejected",
		},
		"attempts": []any{"first sk-secret", 2},
		"count":    3,
	})

	assert.Equal(t, "auth failed for ***MASKED_API_KEY***", evt.Payload["error"])
	nested := evt.Payload["nested"].(map[string]any)
	assert.Equal(t, "key ***MASKED_API_KEY*** rejected", nested["detail"])
	attempts := evt.Payload["attempts"].([]any)
	assert.Equal(t, "first ***MASKED_API_KEY***", attempts[0])
	assert.Equal(t, 2, attempts[1])
	assert.Equal(t, 3, evt.Payload["count"])
}

func TestBusDropSessionClosesSubscribers(t *testing.T) {
	bus := NewBus(nil, nil)
	sub := bus.Subscribe("session-1", 0)

	bus.DropSession("session-1")

	select {
	case _, ok := <-sub.C:
		assert.False(t, ok, "channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("channel was not closed")
	}

	// Ring is gone
	assert.Empty(t, bus.History("session-1", 0))
}

func TestBusCloseIsIdempotentOnSubscription(t *testing.T) {
	bus := NewBus(nil, nil)
	sub := bus.Subscribe("session-1", 0)
	sub.Close()
	sub.Close()
}

func TestBusReplayRebuildsRingFromLog(t *testing.T) {
	dir := t.TempDir()

	log1, err := NewLog(dir)
	require.NoError(t, err)
	bus1 := NewBus(log1, nil)
	for i := 0; i < 5; i++ {
		bus1.PublishStepStart("session-1", StepStartPayload{Step: "plan", StepIndex: i})
	}
	bus1.Close()

	// A fresh process rebuilds the ring from disk.
	log2, err := NewLog(dir)
	require.NoError(t, err)
	bus2 := NewBus(log2, nil)
	require.NoError(t, bus2.ReplayAll())

	history := bus2.History("session-1", 0)
	require.Len(t, history, 5)
	assert.Equal(t, int64(1), history[0].ID)
	assert.Equal(t, int64(5), history[4].ID)
	assert.Equal(t, "plan", history[0].Payload["step"])

	// New events number from 1 again; the replayed ring is catch-up only.
	evt := bus2.PublishStepEnd("session-1", StepEndPayload{Step: "plan"})
	assert.Equal(t, int64(1), evt.ID)
}

func TestBusHistorySinceFiltersByID(t *testing.T) {
	bus := NewBus(nil, nil)
	for i := 0; i < 5; i++ {
		bus.PublishStepStart("session-1", StepStartPayload{Step: "plan", StepIndex: i})
	}

	history := bus.History("session-1", 3)
	require.Len(t, history, 2)
	assert.Equal(t, int64(4), history[0].ID)
	assert.Equal(t, int64(5), history[1].ID)

	assert.Empty(t, bus.History("session-1", 99))
	assert.Empty(t, bus.History("unknown", 0))
}
