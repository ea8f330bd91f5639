package events

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Log persists events one JSON object per line to <dir>/<session_id>.jsonl.
// Handles are opened lazily on first append and kept open until closed, so
// a session's whole event stream costs one open call. Writes go straight
// to the OS (no userspace buffering): every line is durable against a
// process crash, if not a power cut.
type Log struct {
	dir string

	mu    sync.Mutex
	files map[string]*os.File
}

// NewLog creates the log directory if needed.
func NewLog(dir string) (*Log, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create event log directory: %w", err)
	}
	return &Log{dir: dir, files: make(map[string]*os.File)}, nil
}

// Dir returns the log directory.
func (l *Log) Dir() string { return l.dir }

// Append writes one event as a single JSON line.
func (l *Log) Append(evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := l.fileLocked(evt.SessionID)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

func (l *Log) fileLocked(sessionID string) (*os.File, error) {
	if f, ok := l.files[sessionID]; ok {
		return f, nil
	}
	f, err := os.OpenFile(l.path(sessionID), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}
	l.files[sessionID] = f
	return f, nil
}

func (l *Log) path(sessionID string) string {
	return filepath.Join(l.dir, sessionID+".jsonl")
}

// Read loads every event in a session's log, oldest first. Unparseable
// lines are skipped: a truncated final line is expected after a crash
// mid-append. A missing file returns an empty slice.
func (l *Log) Read(sessionID string) ([]Event, error) {
	f, err := os.Open(l.path(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var evt Event
		if err := json.Unmarshal(line, &evt); err != nil {
			continue
		}
		events = append(events, evt)
	}
	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("failed to read event log: %w", err)
	}
	return events, nil
}

// Sessions lists the session IDs that have a log file.
func (l *Log) Sessions() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read event log directory: %w", err)
	}
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if id, ok := strings.CutSuffix(entry.Name(), ".jsonl"); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Close closes the open handle for one session, if any.
func (l *Log) Close(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f, ok := l.files[sessionID]; ok {
		_ = f.Close()
		delete(l.files, sessionID)
	}
}

// Remove closes and deletes a session's log file.
func (l *Log) Remove(sessionID string) error {
	l.Close(sessionID)
	if err := os.Remove(l.path(sessionID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove event log: %w", err)
	}
	return nil
}

// CloseAll closes every open handle.
func (l *Log) CloseAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, f := range l.files {
		_ = f.Close()
		delete(l.files, id)
	}
}
