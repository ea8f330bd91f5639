package llm

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmhernandez2525/research-agent-sub001/pkg/config"
)

// cacheVersion participates in every cache key so a format change invalidates
// old entries wholesale instead of misreading them.
const cacheVersion = "v1"

// CacheStats reports disk cache effectiveness counters.
type CacheStats struct {
	Hits          int `json:"hits"`
	Misses        int `json:"misses"`
	Stores        int `json:"stores"`
	StoreFailures int `json:"store_failures"`
}

// cacheEntry is the on-disk envelope, one JSON file per key.
type cacheEntry struct {
	StoredAt time.Time `json:"stored_at"`
	Response *Response `json:"response"`
}

// cacheKeyParts is marshalled deterministically (fixed field order) to build
// the cache key hash.
type cacheKeyParts struct {
	Version       string    `json:"version"`
	Model         string    `json:"model"`
	Temperature   float64   `json:"temperature"`
	System        string    `json:"system"`
	Messages      []Message `json:"messages"`
	PromptVersion string    `json:"prompt_version"`
}

// DiskCache stores deterministic LLM responses on disk so re-runs of
// identical requests skip the provider entirely. Only low-temperature calls
// participate; sampled output is not reproducible and caching it would feed
// stale nondeterminism back into runs.
//
// The cache is strictly best-effort: read and write failures degrade to cache
// misses and never propagate to the caller.
type DiskCache struct {
	dir    string
	ttl    time.Duration
	maxTmp float64

	mu    sync.Mutex
	stats CacheStats
}

// NewDiskCache builds a cache from configuration. The directory is created
// lazily on first store.
func NewDiskCache(cfg config.CacheConfig) *DiskCache {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	dir := cfg.Directory
	if dir == "" {
		dir = "./data/llm_cache"
	}
	return &DiskCache{dir: dir, ttl: ttl, maxTmp: cfg.MaxTemperature}
}

// Key returns the cache key for a request: a SHA-256 over the deterministic
// serialization of everything that influences the completion.
func (c *DiskCache) Key(req *Request) string {
	parts := cacheKeyParts{
		Version:       cacheVersion,
		Model:         req.Model,
		Temperature:   req.Temperature,
		System:        req.System,
		Messages:      req.Messages,
		PromptVersion: req.PromptVersion,
	}
	raw, err := json.Marshal(parts)
	if err != nil {
		// Message and string fields cannot fail to marshal; keep a
		// stable fallback anyway.
		raw = []byte(fmt.Sprintf("%s|%s|%f", req.Model, req.System, req.Temperature))
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Get returns the cached response for req, or nil on a miss. Requests above
// the temperature ceiling never hit.
func (c *DiskCache) Get(req *Request) *Response {
	if c == nil || req.Temperature > c.maxTmp {
		return nil
	}

	key := c.Key(req)
	raw, err := os.ReadFile(c.path(key))
	if err != nil {
		c.recordMiss(key)
		return nil
	}

	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil || entry.Response == nil {
		slog.Warn("Discarding unreadable cache entry", "key_prefix", keyPrefix(key), "error", err)
		_ = os.Remove(c.path(key))
		c.recordMiss(key)
		return nil
	}

	if time.Since(entry.StoredAt) > c.ttl {
		_ = os.Remove(c.path(key))
		c.recordMiss(key)
		return nil
	}

	c.mu.Lock()
	c.stats.Hits++
	c.mu.Unlock()
	slog.Debug("LLM cache hit", "key_prefix", keyPrefix(key), "model", req.Model)

	resp := *entry.Response
	resp.FromCache = true
	return &resp
}

// Put stores a response for req. Requests above the temperature ceiling are
// skipped. Returns true when the entry was written.
func (c *DiskCache) Put(req *Request, resp *Response) bool {
	if c == nil || resp == nil || req.Temperature > c.maxTmp {
		return false
	}

	key := c.Key(req)
	entry := cacheEntry{StoredAt: time.Now(), Response: resp}
	raw, err := json.Marshal(entry)
	if err != nil {
		c.recordStoreFailure(key, err)
		return false
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		c.recordStoreFailure(key, err)
		return false
	}
	if err := os.WriteFile(c.path(key), raw, 0o644); err != nil {
		c.recordStoreFailure(key, err)
		return false
	}

	c.mu.Lock()
	c.stats.Stores++
	c.mu.Unlock()
	slog.Debug("LLM response cached", "key_prefix", keyPrefix(key), "model", req.Model)
	return true
}

// Size returns the number of entries currently on disk.
func (c *DiskCache) Size() int {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			n++
		}
	}
	return n
}

// Clear removes all entries and returns how many were deleted.
func (c *DiskCache) Clear() int {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0
	}
	removed := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err == nil {
			removed++
		}
	}
	slog.Info("LLM cache cleared", "removed", removed)
	return removed
}

// Stats returns a snapshot of the effectiveness counters.
func (c *DiskCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *DiskCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

func (c *DiskCache) recordMiss(key string) {
	c.mu.Lock()
	c.stats.Misses++
	c.mu.Unlock()
	slog.Debug("LLM cache miss", "key_prefix", keyPrefix(key))
}

func (c *DiskCache) recordStoreFailure(key string, err error) {
	c.mu.Lock()
	c.stats.StoreFailures++
	c.mu.Unlock()
	slog.Warn("Failed to store LLM cache entry", "key_prefix", keyPrefix(key), "error", err)
}

func keyPrefix(key string) string {
	if len(key) > 12 {
		return key[:12]
	}
	return key
}
