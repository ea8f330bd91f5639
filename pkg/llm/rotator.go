package llm

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// defaultKeyCooldown is how long a key sits out after a rate limit before it
// rejoins the rotation.
const defaultKeyCooldown = 60 * time.Second

// KeyStats reports the key pool state for one provider.
type KeyStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
}

// KeyRotator hands out provider API keys round-robin and benches keys that
// hit rate limits. Keys are loaded lazily per provider from the environment:
// PROVIDER_API_KEYS (comma-separated) first, then PROVIDER_API_KEY as a
// single-key fallback.
type KeyRotator struct {
	cooldown time.Duration

	mu        sync.Mutex
	keys      map[string][]string
	index     map[string]int
	cooldowns map[string]time.Time
}

// NewKeyRotator builds a rotator. cooldown <= 0 selects the default.
func NewKeyRotator(cooldown time.Duration) *KeyRotator {
	if cooldown <= 0 {
		cooldown = defaultKeyCooldown
	}
	return &KeyRotator{
		cooldown:  cooldown,
		keys:      make(map[string][]string),
		index:     make(map[string]int),
		cooldowns: make(map[string]time.Time),
	}
}

func loadKeysFromEnv(provider string) []string {
	upper := strings.ToUpper(provider)
	if raw := os.Getenv(upper + "_API_KEYS"); raw != "" {
		var keys []string
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			return keys
		}
	}
	if single := strings.TrimSpace(os.Getenv(upper + "_API_KEY")); single != "" {
		return []string{single}
	}
	return nil
}

// keysLocked returns the cached key pool for provider, loading it from the
// environment on first use.
func (r *KeyRotator) keysLocked(provider string) []string {
	if keys, ok := r.keys[provider]; ok {
		return keys
	}
	keys := loadKeysFromEnv(provider)
	r.keys[provider] = keys
	if len(keys) > 0 {
		slog.Info("Loaded API keys for provider", "provider", provider, "count", len(keys))
	}
	return keys
}

// GetKey returns the next usable key for provider, skipping keys that are
// cooling down. It returns ErrNoKeysAvailable when the provider has no
// configured keys or every key is benched; callers then fall back to the
// provider SDK's own environment resolution.
func (r *KeyRotator) GetKey(provider string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := r.keysLocked(provider)
	if len(keys) == 0 {
		return "", fmt.Errorf("no keys configured for provider %q: %w", provider, ErrNoKeysAvailable)
	}

	now := time.Now()
	for attempt := 0; attempt < len(keys); attempt++ {
		idx := r.index[provider] % len(keys)
		r.index[provider] = idx + 1

		until, cooling := r.cooldowns[cooldownKey(provider, idx)]
		if cooling && now.Before(until) {
			continue
		}
		return keys[idx], nil
	}

	slog.Warn("All API keys cooling down", "provider", provider, "count", len(keys))
	return "", fmt.Errorf("all %d keys for provider %q are cooling down: %w", len(keys), provider, ErrNoKeysAvailable)
}

// MarkRateLimited benches the given key for the cooldown period. Unknown
// keys are ignored.
func (r *KeyRotator) MarkRateLimited(provider, key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx, k := range r.keysLocked(provider) {
		if k == key {
			r.cooldowns[cooldownKey(provider, idx)] = time.Now().Add(r.cooldown)
			slog.Warn("API key rate limited, cooling down",
				"provider", provider, "key_index", idx, "cooldown", r.cooldown)
			return
		}
	}
}

// Stats reports total and currently-available key counts per loaded provider.
func (r *KeyRotator) Stats() map[string]KeyStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	out := make(map[string]KeyStats, len(r.keys))
	for provider, keys := range r.keys {
		available := 0
		for idx := range keys {
			until, cooling := r.cooldowns[cooldownKey(provider, idx)]
			if !cooling || !now.Before(until) {
				available++
			}
		}
		out[provider] = KeyStats{Total: len(keys), Available: available}
	}
	return out
}

func cooldownKey(provider string, idx int) string {
	return fmt.Sprintf("%s:%d", provider, idx)
}
