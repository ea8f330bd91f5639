// Package events provides the progress event bus: monotonically numbered
// events fanned out to an in-process ring buffer (for catch-up), a JSONL
// log on disk (for replay after restart), and live subscriber channels
// (for SSE and WebSocket delivery).
//
// Event IDs are monotone per process and start at 1. A process restart
// restarts the sequence; the per-session ring is rebuilt from the JSONL
// log so late subscribers can still catch up on earlier progress.
package events

import "strings"

// Event types published by the pipeline and session manager.
const (
	// Session lifecycle transitions (queued, running, completed, ...).
	EventTypeSessionStatus = "session_status"

	// Node lifecycle. step_end fires once per completed node, after the
	// node's delta has been merged and the checkpoint written.
	EventTypeStepStart = "step_start"
	EventTypeStepEnd   = "step_end"
	EventTypeStepError = "step_error"

	// One event per LLM completion, cached or live.
	EventTypeLLMCall = "llm_call"

	// Budget threshold crossings and degradation transitions.
	EventTypeBudgetWarning = "budget_warning"

	// Report quality check result (advisory).
	EventTypeQualityCheck = "quality_check"

	// Non-fatal session warnings (empty scrape, partial report, ...).
	EventTypeSessionWarning = "session_warning"

	// Keep-alive for streaming transports.
	EventTypePing = "ping"
)

// Event is the envelope persisted to the JSONL log and delivered to
// subscribers. IDs are assigned at publish time.
type Event struct {
	ID        int64          `json:"id"`         // monotone per process, from 1
	SessionID string         `json:"session_id"` // owning session
	Type      string         `json:"event_type"` // one of the EventType* constants
	Timestamp string         `json:"timestamp"`  // RFC3339Nano
	Payload   map[string]any `json:"payload"`    // type-specific fields, see payloads.go
}

// GlobalSessionsChannel is the channel for session-level status events.
// The session list view subscribes to this for real-time updates. Global
// delivery is live-only; there is no catch-up for it.
const GlobalSessionsChannel = "sessions"

// SessionChannel returns the channel name for a specific session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// sessionFromChannel extracts the session ID from a "session:{id}" channel
// name. Returns "" for the global channel or malformed names.
func sessionFromChannel(channel string) string {
	if rest, ok := strings.CutPrefix(channel, "session:"); ok {
		return rest
	}
	return ""
}

// ClientMessage is the JSON structure for client -> server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "session:abc-123")
	LastEventID *int64 `json:"last_event_id,omitempty"` // For catchup
}

// Masker redacts secrets from strings before they leave the process.
// Implemented by masking.Service.
type Masker interface {
	Mask(s string) string
}
