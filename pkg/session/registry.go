// Package session tracks the research sessions running inside this process.
// The registry is the bridge between the durable queue (database rows owned
// by the worker pool) and the API surface: it holds the cancel function for
// each active run and a live progress mirror the HTTP handlers can read
// without touching the database.
package session

import (
	"context"
	"sync"
	"time"
)

// Progress is the live view of one running session. Workers overwrite it as
// pipeline steps complete; readers get a copy.
type Progress struct {
	Step            string    `json:"step,omitempty"`
	StepIndex       int       `json:"step_index"`
	CurrentSubtopic int       `json:"current_subtopic"`
	TotalSubtopics  int       `json:"total_subtopics"`
	CostUSD         float64   `json:"cost_usd"`
	LLMCalls        int       `json:"llm_calls"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Entry is one registered in-process session.
type Entry struct {
	SessionID string
	WorkerID  string
	StartedAt time.Time

	cancel context.CancelFunc

	mu       sync.Mutex
	progress Progress
}

// SetProgress replaces the progress mirror, stamping UpdatedAt.
func (e *Entry) SetProgress(p Progress) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p.UpdatedAt = time.Now()
	e.progress = p
}

// Progress returns a copy of the current progress mirror.
func (e *Entry) Progress() Progress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.progress
}

// Registry holds the sessions currently running in this process. All methods
// are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register records a running session and its cancel function. Registering an
// ID that is already present replaces the previous entry; the worker pool
// guarantees one run per session, so a replacement only happens after a
// crashed worker's entry was never deregistered.
func (r *Registry) Register(sessionID, workerID string, cancel context.CancelFunc) *Entry {
	entry := &Entry{
		SessionID: sessionID,
		WorkerID:  workerID,
		StartedAt: time.Now(),
		cancel:    cancel,
	}
	r.mu.Lock()
	r.entries[sessionID] = entry
	r.mu.Unlock()
	return entry
}

// Deregister drops the session from the registry. Unknown IDs are a no-op.
func (r *Registry) Deregister(sessionID string) {
	r.mu.Lock()
	delete(r.entries, sessionID)
	r.mu.Unlock()
}

// Get returns the entry for a running session.
func (r *Registry) Get(sessionID string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[sessionID]
	return entry, ok
}

// Progress returns the live progress mirror for a running session.
func (r *Registry) Progress(sessionID string) (Progress, bool) {
	entry, ok := r.Get(sessionID)
	if !ok {
		return Progress{}, false
	}
	return entry.Progress(), true
}

// Cancel cancels the in-process context of a running session. It reports
// whether the session was registered here; a false return usually means the
// session runs on another replica or already finished.
func (r *Registry) Cancel(sessionID string) bool {
	entry, ok := r.Get(sessionID)
	if !ok {
		return false
	}
	entry.cancel()
	return true
}

// CancelAll cancels every registered session. Called on shutdown before the
// drain wait.
func (r *Registry) CancelAll() {
	r.mu.RLock()
	entries := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	for _, e := range entries {
		e.cancel()
	}
}

// ActiveIDs lists the registered session IDs.
func (r *Registry) ActiveIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
