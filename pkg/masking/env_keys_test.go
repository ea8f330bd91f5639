package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEnvKeyMasker_CollectsSingleAndListValues(t *testing.T) {
	t.Setenv("TAVILY_API_KEY", "tvly-FAKE-NOT-REAL-4444")
	t.Setenv("SERPER_API_KEYS", "serper-key-one-aaaa, serper-key-two-bbbb")

	m := NewEnvKeyMasker()

	assert.Equal(t, "env_api_keys", m.Name())
	assert.Contains(t, m.values, "tvly-FAKE-NOT-REAL-4444")
	assert.Contains(t, m.values, "serper-key-one-aaaa", "List entries should be split and trimmed")
	assert.Contains(t, m.values, "serper-key-two-bbbb")
}

func TestNewEnvKeyMasker_SkipsShortValues(t *testing.T) {
	t.Setenv("TINY_API_KEY", "abc")

	m := NewEnvKeyMasker()

	assert.NotContains(t, m.values, "abc", "Short values would shred unrelated text if replaced")
	assert.Equal(t, "abc def", m.Mask("abc def"))
}

func TestEnvKeyMasker_IgnoresUnrelatedVariables(t *testing.T) {
	t.Setenv("RESEARCH_OUTPUT_DIR", "/tmp/not-a-secret-value")

	m := NewEnvKeyMasker()

	assert.NotContains(t, m.values, "/tmp/not-a-secret-value")
}

func TestEnvKeyMasker_AppliesToAndMask(t *testing.T) {
	t.Setenv("TAVILY_API_KEY", "tvly-FAKE-NOT-REAL-4444")

	m := NewEnvKeyMasker()

	assert.True(t, m.AppliesTo("request with tvly-FAKE-NOT-REAL-4444 failed"))
	assert.False(t, m.AppliesTo("nothing sensitive here"))

	masked := m.Mask("key tvly-FAKE-NOT-REAL-4444 repeated: tvly-FAKE-NOT-REAL-4444")
	assert.NotContains(t, masked, "tvly-FAKE-NOT-REAL-4444")
	assert.Equal(t, "key ***MASKED_API_KEY*** repeated: ***MASKED_API_KEY***", masked)
}
