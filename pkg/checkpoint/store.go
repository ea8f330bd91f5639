// Package checkpoint persists pipeline state snapshots to disk so a killed
// process can resume a session from its last durable step.
//
// Layout is one directory per session under the configured root:
//
//	<root>/<session_id>/checkpoint_0001.json       state snapshot
//	<root>/<session_id>/checkpoint_0001.meta.json  integrity metadata
//	<root>/<session_id>/quarantine/                corrupt files moved aside
//
// Writes are temp-file, fsync, rename, so a snapshot is either fully present
// or absent. The state file is written before its metadata file; metadata is
// the commit record, and a state file without one is treated as corrupt.
package checkpoint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
)

// SchemaVersion is written into every new checkpoint. Version 2 added
// step_name and state_size_bytes; version 1 files still load because the
// additions have usable zero values.
const SchemaVersion = 2

const (
	filePrefix    = "checkpoint_"
	stateSuffix   = ".json"
	metaSuffix    = ".meta.json"
	quarantineDir = "quarantine"

	defaultDirectory = "./data/checkpoints"
	defaultMaxKeep   = 5

	// minKeep guards resumability: rotation never drops below two
	// snapshots, so one corrupt newest file still leaves a fallback.
	minKeep = 2
)

var (
	// ErrCorrupt marks a checkpoint whose checksum or structure does not
	// verify. Callers refuse to resume from it.
	ErrCorrupt = errors.New("checkpoint corrupt")

	// ErrNotFound marks a session with no checkpoint on disk.
	ErrNotFound = errors.New("checkpoint not found")
)

// Meta is the integrity record stored next to each state snapshot.
type Meta struct {
	CheckpointID   string    `json:"checkpoint_id"`
	CreatedAt      time.Time `json:"created_at"`
	StepIndex      int       `json:"step_index"`
	StepName       string    `json:"step_name"`
	SchemaVersion  int       `json:"schema_version"`
	SHA256         string    `json:"sha256"`
	StateSizeBytes int       `json:"state_size_bytes"`
}

// Snapshot is one verified checkpoint. State is the raw JSON the caller
// saved; the store does not interpret it.
type Snapshot struct {
	Meta  Meta
	State json.RawMessage
}

// Store reads and writes checkpoints for all sessions under one root
// directory. Methods are safe for concurrent use; each session is only ever
// written by its own scheduler, so the single mutex is not contended.
type Store struct {
	dir     string
	maxKeep int

	mu sync.Mutex
}

// NewStore builds a store from configuration. The root directory is created
// lazily on first save.
func NewStore(cfg config.CheckpointConfig) *Store {
	dir := cfg.Directory
	if dir == "" {
		dir = defaultDirectory
	}
	maxKeep := cfg.MaxCheckpoints
	if maxKeep <= 0 {
		maxKeep = defaultMaxKeep
	}
	if maxKeep < minKeep {
		maxKeep = minKeep
	}
	return &Store{dir: dir, maxKeep: maxKeep}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

// Save durably writes a new snapshot and rotates old ones out. After Save
// returns, a fresh process loading the session observes the written state.
func (s *Store) Save(sessionID string, state any, stepIndex int, stepName string) (Meta, error) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return Meta{}, fmt.Errorf("failed to marshal checkpoint state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.sessionDir(sessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Meta{}, fmt.Errorf("failed to create checkpoint directory: %w", err)
	}

	seqs, err := sequencesLocked(dir)
	if err != nil {
		return Meta{}, err
	}
	next := 1
	if len(seqs) > 0 {
		next = seqs[len(seqs)-1] + 1
	}

	sum := sha256.Sum256(data)
	meta := Meta{
		CheckpointID:   checkpointID(next),
		CreatedAt:      time.Now().UTC(),
		StepIndex:      stepIndex,
		StepName:       stepName,
		SchemaVersion:  SchemaVersion,
		SHA256:         hex.EncodeToString(sum[:]),
		StateSizeBytes: len(data),
	}
	metaData, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return Meta{}, fmt.Errorf("failed to marshal checkpoint metadata: %w", err)
	}

	// 1. State first, metadata second. The metadata file commits the
	//    checkpoint; a crash in between leaves an uncommitted state file
	//    that Load and Recover treat as corrupt.
	if err := writeFileAtomic(filepath.Join(dir, meta.CheckpointID+stateSuffix), data); err != nil {
		return Meta{}, err
	}
	if err := writeFileAtomic(filepath.Join(dir, meta.CheckpointID+metaSuffix), metaData); err != nil {
		return Meta{}, err
	}

	// 2. Rotate oldest snapshots beyond the retention limit.
	seqs = append(seqs, next)
	for len(seqs) > s.maxKeep {
		id := checkpointID(seqs[0])
		seqs = seqs[1:]
		removeQuiet(filepath.Join(dir, id+stateSuffix))
		removeQuiet(filepath.Join(dir, id+metaSuffix))
	}

	slog.Debug("Checkpoint saved",
		"session_id", sessionID,
		"checkpoint_id", meta.CheckpointID,
		"step", stepName,
		"bytes", meta.StateSizeBytes)
	return meta, nil
}

// Load reads and verifies one checkpoint by ID.
func (s *Store) Load(sessionID, checkpointID string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(s.sessionDir(sessionID), checkpointID)
}

func (s *Store) loadLocked(dir, id string) (*Snapshot, error) {
	statePath := filepath.Join(dir, id+stateSuffix)
	metaPath := filepath.Join(dir, id+metaSuffix)

	metaData, metaErr := os.ReadFile(metaPath)
	state, stateErr := os.ReadFile(statePath)
	if os.IsNotExist(metaErr) && os.IsNotExist(stateErr) {
		return nil, fmt.Errorf("checkpoint %q: %w", id, ErrNotFound)
	}
	if metaErr != nil {
		return nil, fmt.Errorf("checkpoint %q has no readable metadata: %w", id, ErrCorrupt)
	}
	if stateErr != nil {
		return nil, fmt.Errorf("checkpoint %q has no readable state: %w", id, ErrCorrupt)
	}

	var meta Meta
	if err := json.Unmarshal(metaData, &meta); err != nil {
		return nil, fmt.Errorf("checkpoint %q metadata does not parse: %w", id, ErrCorrupt)
	}
	if meta.SchemaVersion > SchemaVersion {
		return nil, fmt.Errorf("checkpoint %q uses schema version %d, newer than supported %d",
			id, meta.SchemaVersion, SchemaVersion)
	}

	sum := sha256.Sum256(state)
	if hex.EncodeToString(sum[:]) != meta.SHA256 {
		return nil, fmt.Errorf("checkpoint %q checksum mismatch: %w", id, ErrCorrupt)
	}
	return &Snapshot{Meta: meta, State: state}, nil
}

// Latest loads the newest checkpoint, failing on corruption. Use Recover to
// walk past corrupt snapshots.
func (s *Store) Latest(sessionID string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.sessionDir(sessionID)
	seqs, err := sequencesLocked(dir)
	if err != nil {
		return nil, err
	}
	if len(seqs) == 0 {
		return nil, fmt.Errorf("session %q: %w", sessionID, ErrNotFound)
	}
	return s.loadLocked(dir, checkpointID(seqs[len(seqs)-1]))
}

// LatestStep reads the newest checkpoint's metadata without loading state.
func (s *Store) LatestStep(sessionID string) (Meta, error) {
	snap, err := s.Latest(sessionID)
	if err != nil {
		return Meta{}, err
	}
	return snap.Meta, nil
}

// List returns metadata for every verifiable checkpoint, newest first.
// Unreadable entries are skipped.
func (s *Store) List(sessionID string) ([]Meta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.sessionDir(sessionID)
	seqs, err := sequencesLocked(dir)
	if err != nil {
		return nil, err
	}

	metas := make([]Meta, 0, len(seqs))
	for i := len(seqs) - 1; i >= 0; i-- {
		metaData, err := os.ReadFile(filepath.Join(dir, checkpointID(seqs[i])+metaSuffix))
		if err != nil {
			continue
		}
		var meta Meta
		if err := json.Unmarshal(metaData, &meta); err != nil {
			continue
		}
		metas = append(metas, meta)
	}
	return metas, nil
}

// Recover walks checkpoints newest to oldest looking for one that verifies.
// Corrupt snapshots are moved into the session's quarantine directory rather
// than deleted. A session with no usable checkpoint returns (nil, nil): the
// caller starts fresh.
func (s *Store) Recover(sessionID string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.sessionDir(sessionID)
	seqs, err := sequencesLocked(dir)
	if err != nil {
		return nil, err
	}

	for i := len(seqs) - 1; i >= 0; i-- {
		id := checkpointID(seqs[i])
		snap, err := s.loadLocked(dir, id)
		if err == nil {
			slog.Info("Recovered checkpoint",
				"session_id", sessionID,
				"checkpoint_id", id,
				"step", snap.Meta.StepName)
			return snap, nil
		}
		if !errors.Is(err, ErrCorrupt) {
			return nil, err
		}
		slog.Warn("Quarantining corrupt checkpoint",
			"session_id", sessionID, "checkpoint_id", id, "error", err)
		if err := quarantineLocked(dir, id); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// Remove deletes a session's checkpoint directory, quarantine included.
func (s *Store) Remove(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.RemoveAll(s.sessionDir(sessionID)); err != nil {
		return fmt.Errorf("failed to remove checkpoint directory: %w", err)
	}
	return nil
}

// Sessions lists session IDs with a checkpoint directory.
func (s *Store) Sessions() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read checkpoint root: %w", err)
	}
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			ids = append(ids, entry.Name())
		}
	}
	return ids, nil
}

func (s *Store) sessionDir(sessionID string) string {
	return filepath.Join(s.dir, sessionID)
}

func checkpointID(seq int) string {
	return fmt.Sprintf("%s%04d", filePrefix, seq)
}

// sequencesLocked lists checkpoint sequence numbers in ascending order,
// derived from state file names. A missing session directory is empty, not
// an error.
func sequencesLocked(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read checkpoint directory: %w", err)
	}

	var seqs []int
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasSuffix(name, metaSuffix) {
			continue
		}
		rest, ok := strings.CutPrefix(name, filePrefix)
		if !ok {
			continue
		}
		numPart, ok := strings.CutSuffix(rest, stateSuffix)
		if !ok {
			continue
		}
		seq, err := strconv.Atoi(numPart)
		if err != nil {
			continue
		}
		seqs = append(seqs, seq)
	}
	sort.Ints(seqs)
	return seqs, nil
}

func quarantineLocked(dir, id string) error {
	qdir := filepath.Join(dir, quarantineDir)
	if err := os.MkdirAll(qdir, 0o755); err != nil {
		return fmt.Errorf("failed to create quarantine directory: %w", err)
	}
	for _, suffix := range []string{stateSuffix, metaSuffix} {
		src := filepath.Join(dir, id+suffix)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		if err := os.Rename(src, filepath.Join(qdir, id+suffix)); err != nil {
			return fmt.Errorf("failed to quarantine checkpoint file: %w", err)
		}
	}
	return nil
}

// writeFileAtomic writes data via a temp file, fsyncs it, and renames it
// into place. The directory is fsynced afterwards so the rename itself
// survives a crash.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		removeQuiet(tmp)
		return fmt.Errorf("failed to write checkpoint temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		removeQuiet(tmp)
		return fmt.Errorf("failed to sync checkpoint temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		removeQuiet(tmp)
		return fmt.Errorf("failed to close checkpoint temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		removeQuiet(tmp)
		return fmt.Errorf("failed to publish checkpoint file: %w", err)
	}

	if dir, err := os.Open(filepath.Dir(path)); err == nil {
		_ = dir.Sync()
		_ = dir.Close()
	}
	return nil
}

func removeQuiet(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to remove checkpoint file", "path", path, "error", err)
	}
}
