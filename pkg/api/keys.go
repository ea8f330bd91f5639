package api

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrKeyNotFound is returned for lookups of unknown or revoked key IDs.
var ErrKeyNotFound = errors.New("api key not found")

// APIKey is one entry in the key store. Key is the full secret; it is only
// returned in full once, at creation.
type APIKey struct {
	ID              string    `json:"id"`
	Key             string    `json:"key"`
	Name            string    `json:"name"`
	Admin           bool      `json:"admin"`
	Revoked         bool      `json:"revoked"`
	CreatedAt       time.Time `json:"created_at"`
	Requests        int64     `json:"requests"`
	SessionsStarted int64     `json:"sessions_started"`
	TokensUsed      int64     `json:"tokens_used"`
	CostUSD         float64   `json:"cost_usd"`
}

// Masked returns a copy safe for listings: the secret is reduced to its
// prefix and last four characters.
func (k APIKey) Masked() APIKey {
	k.Key = maskKey(k.Key)
	return k
}

func maskKey(key string) string {
	if len(key) <= 10 {
		return "ra_****"
	}
	return key[:6] + "****" + key[len(key)-4:]
}

// KeyStore is a JSON-file-backed API key store. Every mutation rewrites
// the whole file atomically (temp file + rename), matching how the rest of
// the system persists small state.
type KeyStore struct {
	mu   sync.Mutex
	path string
	keys []*APIKey
}

// NewKeyStore loads the store at path, creating it with a default admin
// key on first boot. The default key is logged in full exactly once; every
// later read sees it masked.
func NewKeyStore(path string) (*KeyStore, error) {
	s := &KeyStore{path: path}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		admin, createErr := s.create("default-admin", true)
		if createErr != nil {
			return nil, createErr
		}
		slog.Info("Created default admin API key; store it now, it will not be shown again",
			"key", admin.Key, "path", path)
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read key store: %w", err)
	}

	if err := json.Unmarshal(data, &s.keys); err != nil {
		return nil, fmt.Errorf("failed to parse key store %s: %w", path, err)
	}
	return s, nil
}

// Create mints a new key and persists the store.
func (s *KeyStore) Create(name string, admin bool) (*APIKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.create(name, admin)
}

func (s *KeyStore) create(name string, admin bool) (*APIKey, error) {
	secret, err := generateKey()
	if err != nil {
		return nil, err
	}
	key := &APIKey{
		ID:        uuid.NewString(),
		Key:       secret,
		Name:      name,
		Admin:     admin,
		CreatedAt: time.Now().UTC(),
	}
	s.keys = append(s.keys, key)
	if err := s.persistLocked(); err != nil {
		s.keys = s.keys[:len(s.keys)-1]
		return nil, err
	}
	copied := *key
	return &copied, nil
}

// generateKey returns "ra_" plus 24 URL-safe base64 characters.
func generateKey() (string, error) {
	raw := make([]byte, 18)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate key material: %w", err)
	}
	return "ra_" + base64.RawURLEncoding.EncodeToString(raw), nil
}

// Authenticate resolves a presented secret to its key record. Revoked keys
// do not authenticate.
func (s *KeyStore) Authenticate(secret string) (*APIKey, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.keys {
		if k.Key == secret && !k.Revoked {
			copied := *k
			return &copied, true
		}
	}
	return nil, false
}

// List returns all keys with masked secrets, including revoked ones.
func (s *KeyStore) List() []APIKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]APIKey, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, k.Masked())
	}
	return out
}

// Revoke marks a key revoked by ID. Revocation is permanent; the entry
// stays in the file for usage accounting.
func (s *KeyStore) Revoke(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.keys {
		if k.ID == id {
			if k.Revoked {
				return nil
			}
			k.Revoked = true
			return s.persistLocked()
		}
	}
	return ErrKeyNotFound
}

// RecordRequest increments the per-key request counter.
func (s *KeyStore) RecordRequest(id string) {
	s.addUsage(id, func(k *APIKey) { k.Requests++ })
}

// RecordSessionStart increments the per-key session counter.
func (s *KeyStore) RecordSessionStart(id string) {
	s.addUsage(id, func(k *APIKey) { k.SessionsStarted++ })
}

// RecordCost adds a finished run's token and dollar usage to the key that
// started it.
func (s *KeyStore) RecordCost(id string, tokens int64, costUSD float64) {
	s.addUsage(id, func(k *APIKey) {
		k.TokensUsed += tokens
		k.CostUSD += costUSD
	})
}

func (s *KeyStore) addUsage(id string, apply func(*APIKey)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.keys {
		if k.ID == id {
			apply(k)
			if err := s.persistLocked(); err != nil {
				slog.Warn("Failed to persist key usage", "key_id", id, "error", err)
			}
			return
		}
	}
}

func (s *KeyStore) persistLocked() error {
	data, err := json.MarshalIndent(s.keys, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode key store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create key store directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".keys-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp key file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write key store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to sync key store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close key store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace key store: %w", err)
	}
	return nil
}
