package events

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// DefaultRingSize is the number of recent events retained per session for
// subscriber catch-up.
const DefaultRingSize = 200

// subscriberExtra is buffer headroom beyond the ring so a catch-up drain
// plus a burst of live events fits without dropping.
const subscriberExtra = 64

// globalKey is the internal subscriber key for live-only delivery of every
// session's events.
const globalKey = ""

// Bus fans published events out to the per-session ring, the JSONL log,
// and live subscribers. All methods are safe for concurrent use.
type Bus struct {
	mu       sync.Mutex
	lastID   int64
	ringSize int
	rings    map[string][]Event

	nextSubID int
	subs      map[string]map[int]*Subscription

	log    *Log   // nil disables persistence
	masker Masker // nil disables masking
}

// NewBus creates a Bus. log may be nil (no persistence, used by the MCP
// stdio path and tests); masker may be nil (no redaction).
func NewBus(log *Log, masker Masker) *Bus {
	return &Bus{
		ringSize: DefaultRingSize,
		rings:    make(map[string][]Event),
		subs:     make(map[string]map[int]*Subscription),
		log:      log,
		masker:   masker,
	}
}

// Subscription is a live event feed for one session, or for all sessions
// when global. The channel is closed by Close (or DropSession).
type Subscription struct {
	C <-chan Event

	bus    *Bus
	key    string
	id     int
	ch     chan Event
	closed bool
}

// Close detaches the subscription and closes its channel. Safe to call
// more than once.
func (s *Subscription) Close() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if m, ok := s.bus.subs[s.key]; ok {
		delete(m, s.id)
		if len(m) == 0 {
			delete(s.bus.subs, s.key)
		}
	}
	close(s.ch)
}

// Publish assigns the next event ID, stamps the event, masks payload
// strings, appends to the ring and the JSONL log, and fans out to
// subscribers without blocking. Returns the published event.
func (b *Bus) Publish(sessionID, eventType string, payload map[string]any) Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastID++
	evt := Event{
		ID:        b.lastID,
		SessionID: sessionID,
		Type:      eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Payload:   b.maskPayload(payload),
	}

	ring := append(b.rings[sessionID], evt)
	if len(ring) > b.ringSize {
		ring = ring[len(ring)-b.ringSize:]
	}
	b.rings[sessionID] = ring

	if b.log != nil {
		if err := b.log.Append(evt); err != nil {
			slog.Warn("Failed to append event to log",
				"session_id", sessionID, "event_type", eventType, "error", err)
		}
	}

	b.deliverLocked(sessionID, evt)
	b.deliverLocked(globalKey, evt)

	return evt
}

// deliverLocked sends to every subscriber under the given key. A full
// buffer drops the subscriber's oldest buffered event so slow consumers
// lag instead of stalling the publisher.
func (b *Bus) deliverLocked(key string, evt Event) {
	for _, sub := range b.subs[key] {
		select {
		case sub.ch <- evt:
		default:
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- evt:
			default:
			}
		}
	}
}

// Subscribe returns a feed for one session. Ring-buffered events with
// id > lastEventID are drained into the feed before live delivery begins,
// so a late subscriber sees no gap between catch-up and live events.
func (b *Bus) Subscribe(sessionID string, lastEventID int64) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := b.newSubscriptionLocked(sessionID)
	for _, evt := range b.rings[sessionID] {
		if evt.ID > lastEventID {
			sub.ch <- evt
		}
	}
	return sub
}

// SubscribeLive returns a feed for one session without catch-up.
func (b *Bus) SubscribeLive(sessionID string) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.newSubscriptionLocked(sessionID)
}

// SubscribeGlobal returns a live-only feed of every session's events.
func (b *Bus) SubscribeGlobal() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.newSubscriptionLocked(globalKey)
}

func (b *Bus) newSubscriptionLocked(key string) *Subscription {
	ch := make(chan Event, b.ringSize+subscriberExtra)
	b.nextSubID++
	sub := &Subscription{
		C:   ch,
		bus: b,
		key: key,
		id:  b.nextSubID,
		ch:  ch,
	}
	if b.subs[key] == nil {
		b.subs[key] = make(map[int]*Subscription)
	}
	b.subs[key][sub.id] = sub
	return sub
}

// History returns the ring-buffered events for a session with
// id > lastEventID, oldest first.
func (b *Bus) History(sessionID string, lastEventID int64) []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Event
	for _, evt := range b.rings[sessionID] {
		if evt.ID > lastEventID {
			out = append(out, evt)
		}
	}
	return out
}

// Replay rebuilds a session's ring from the JSONL log. Called at startup
// before subscribers attach. The ID sequence is not resumed: a new process
// numbers its own events from 1, and the replayed ring keeps the IDs the
// writing process assigned.
func (b *Bus) Replay(sessionID string) error {
	if b.log == nil {
		return nil
	}
	events, err := b.log.Read(sessionID)
	if err != nil {
		return err
	}
	if len(events) > b.ringSize {
		events = events[len(events)-b.ringSize:]
	}
	b.mu.Lock()
	b.rings[sessionID] = events
	b.mu.Unlock()
	return nil
}

// ReplayAll rebuilds the ring for every session with a log file.
func (b *Bus) ReplayAll() error {
	if b.log == nil {
		return nil
	}
	ids, err := b.log.Sessions()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := b.Replay(id); err != nil {
			slog.Warn("Failed to replay event log", "session_id", id, "error", err)
		}
	}
	return nil
}

// DropSession removes a session's ring, closes its subscribers, and closes
// its log handle. Used by retention cleanup.
func (b *Bus) DropSession(sessionID string) {
	b.mu.Lock()
	delete(b.rings, sessionID)
	subs := b.subs[sessionID]
	delete(b.subs, sessionID)
	for _, sub := range subs {
		sub.closed = true
		close(sub.ch)
	}
	b.mu.Unlock()

	if b.log != nil {
		b.log.Close(sessionID)
	}
}

// Close closes all log handles. Subscribers are left open; callers own
// their subscription lifecycles.
func (b *Bus) Close() {
	if b.log != nil {
		b.log.CloseAll()
	}
}

// --- Typed publish methods ---

// PublishSessionStatus publishes a session_status event.
func (b *Bus) PublishSessionStatus(sessionID string, p SessionStatusPayload) Event {
	return b.Publish(sessionID, EventTypeSessionStatus, toPayloadMap(p))
}

// PublishStepStart publishes a step_start event.
func (b *Bus) PublishStepStart(sessionID string, p StepStartPayload) Event {
	return b.Publish(sessionID, EventTypeStepStart, toPayloadMap(p))
}

// PublishStepEnd publishes a step_end event.
func (b *Bus) PublishStepEnd(sessionID string, p StepEndPayload) Event {
	return b.Publish(sessionID, EventTypeStepEnd, toPayloadMap(p))
}

// PublishStepError publishes a step_error event.
func (b *Bus) PublishStepError(sessionID string, p StepErrorPayload) Event {
	return b.Publish(sessionID, EventTypeStepError, toPayloadMap(p))
}

// PublishLLMCall publishes an llm_call event.
func (b *Bus) PublishLLMCall(sessionID string, p LLMCallPayload) Event {
	return b.Publish(sessionID, EventTypeLLMCall, toPayloadMap(p))
}

// PublishBudgetWarning publishes a budget_warning event.
func (b *Bus) PublishBudgetWarning(sessionID string, p BudgetWarningPayload) Event {
	return b.Publish(sessionID, EventTypeBudgetWarning, toPayloadMap(p))
}

// PublishQualityCheck publishes a quality_check event.
func (b *Bus) PublishQualityCheck(sessionID string, p QualityCheckPayload) Event {
	return b.Publish(sessionID, EventTypeQualityCheck, toPayloadMap(p))
}

// PublishSessionWarning publishes a session_warning event.
func (b *Bus) PublishSessionWarning(sessionID string, p SessionWarningPayload) Event {
	return b.Publish(sessionID, EventTypeSessionWarning, toPayloadMap(p))
}

// --- Internal helpers ---

// toPayloadMap converts a typed payload struct to the generic payload map
// through its JSON form, so the stored shape matches the struct tags.
func toPayloadMap(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal event payload", "error", err)
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		slog.Warn("Failed to convert event payload", "error", err)
		return map[string]any{}
	}
	return m
}

func (b *Bus) maskPayload(payload map[string]any) map[string]any {
	if payload == nil {
		return map[string]any{}
	}
	if b.masker == nil {
		return payload
	}
	masked, _ := maskValue(b.masker, payload).(map[string]any)
	return masked
}

// maskValue redacts every string reachable from v, descending into maps
// and slices. Non-string leaves pass through unchanged.
func maskValue(m Masker, v any) any {
	switch t := v.(type) {
	case string:
		return m.Mask(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = maskValue(m, val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = maskValue(m, val)
		}
		return out
	case []string:
		out := make([]string, len(t))
		for i, s := range t {
			out[i] = m.Mask(s)
		}
		return out
	default:
		return v
	}
}
