package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKey_RoundRobin(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEYS", "key-one-FAKE,key-two-FAKE")

	r := NewKeyRotator(time.Minute)

	counts := map[string]int{}
	for i := 0; i < 10; i++ {
		key, err := r.GetKey("anthropic")
		require.NoError(t, err)
		counts[key]++
	}
	assert.Equal(t, 5, counts["key-one-FAKE"])
	assert.Equal(t, 5, counts["key-two-FAKE"])
}

func TestGetKey_TrimsListEntries(t *testing.T) {
	t.Setenv("OPENAI_API_KEYS", " key-first-FAKE , ,key-second-FAKE,")
	t.Setenv("OPENAI_API_KEY", "")

	r := NewKeyRotator(time.Minute)

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		key, err := r.GetKey("openai")
		require.NoError(t, err)
		seen[key] = true
	}
	assert.Equal(t, map[string]bool{"key-first-FAKE": true, "key-second-FAKE": true}, seen)
}

func TestGetKey_SingleKeyEnvFallback(t *testing.T) {
	t.Setenv("OPENAI_API_KEYS", "")
	t.Setenv("OPENAI_API_KEY", "key-single-FAKE")

	r := NewKeyRotator(time.Minute)

	key, err := r.GetKey("openai")
	require.NoError(t, err)
	assert.Equal(t, "key-single-FAKE", key)
}

func TestGetKey_NoKeysConfigured(t *testing.T) {
	t.Setenv("GOOGLE_API_KEYS", "")
	t.Setenv("GOOGLE_API_KEY", "")

	r := NewKeyRotator(time.Minute)

	_, err := r.GetKey("google")
	require.ErrorIs(t, err, ErrNoKeysAvailable)
}

func TestMarkRateLimited_BenchesKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEYS", "key-one-FAKE,key-two-FAKE")

	r := NewKeyRotator(time.Minute)

	first, err := r.GetKey("anthropic")
	require.NoError(t, err)
	r.MarkRateLimited("anthropic", first)

	// Only the remaining key is handed out while the first cools down.
	for i := 0; i < 4; i++ {
		key, err := r.GetKey("anthropic")
		require.NoError(t, err)
		assert.NotEqual(t, first, key)
	}
}

func TestGetKey_AllKeysCooling(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEYS", "key-one-FAKE,key-two-FAKE")

	r := NewKeyRotator(time.Minute)
	r.MarkRateLimited("anthropic", "key-one-FAKE")
	r.MarkRateLimited("anthropic", "key-two-FAKE")

	_, err := r.GetKey("anthropic")
	require.ErrorIs(t, err, ErrNoKeysAvailable)
}

func TestGetKey_CooldownExpires(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEYS", "key-one-FAKE")

	r := NewKeyRotator(20 * time.Millisecond)
	r.MarkRateLimited("anthropic", "key-one-FAKE")

	_, err := r.GetKey("anthropic")
	require.ErrorIs(t, err, ErrNoKeysAvailable)

	time.Sleep(40 * time.Millisecond)

	key, err := r.GetKey("anthropic")
	require.NoError(t, err)
	assert.Equal(t, "key-one-FAKE", key)
}

func TestMarkRateLimited_UnknownKeyIgnored(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEYS", "key-one-FAKE")

	r := NewKeyRotator(time.Minute)
	r.MarkRateLimited("anthropic", "key-never-issued-FAKE")

	key, err := r.GetKey("anthropic")
	require.NoError(t, err)
	assert.Equal(t, "key-one-FAKE", key)
}

func TestKeyRotatorStats(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEYS", "key-one-FAKE,key-two-FAKE,key-three-FAKE")

	r := NewKeyRotator(time.Minute)

	_, err := r.GetKey("anthropic")
	require.NoError(t, err)
	r.MarkRateLimited("anthropic", "key-two-FAKE")

	stats := r.Stats()
	assert.Equal(t, KeyStats{Total: 3, Available: 2}, stats["anthropic"])
}
