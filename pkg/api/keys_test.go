package api

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "keys.json")
}

func TestKeyStore_FirstBootCreatesAdminKey(t *testing.T) {
	path := keyStorePath(t)

	store, err := NewKeyStore(path)
	require.NoError(t, err)

	keys := store.List()
	require.Len(t, keys, 1)
	assert.Equal(t, "default-admin", keys[0].Name)
	assert.True(t, keys[0].Admin)
	assert.Contains(t, keys[0].Key, "****", "listing must mask the secret")

	// The file is a plain JSON array with the full secret.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk []APIKey
	require.NoError(t, json.Unmarshal(data, &onDisk))
	require.Len(t, onDisk, 1)
	assert.True(t, strings.HasPrefix(onDisk[0].Key, "ra_"))
	assert.Len(t, onDisk[0].Key, len("ra_")+24)
}

func TestKeyStore_CreateAuthenticateRevoke(t *testing.T) {
	store, err := NewKeyStore(keyStorePath(t))
	require.NoError(t, err)

	created, err := store.Create("ci-bot", false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.Key, "ra_"))
	assert.False(t, created.Admin)

	authed, ok := store.Authenticate(created.Key)
	require.True(t, ok)
	assert.Equal(t, created.ID, authed.ID)

	_, ok = store.Authenticate("ra_definitely-not-a-key")
	assert.False(t, ok)

	require.NoError(t, store.Revoke(created.ID))
	_, ok = store.Authenticate(created.Key)
	assert.False(t, ok, "revoked keys must not authenticate")

	// Revoking twice is a no-op, unknown IDs error.
	require.NoError(t, store.Revoke(created.ID))
	assert.ErrorIs(t, store.Revoke("no-such-id"), ErrKeyNotFound)
}

func TestKeyStore_PersistsAcrossReload(t *testing.T) {
	path := keyStorePath(t)

	store, err := NewKeyStore(path)
	require.NoError(t, err)
	created, err := store.Create("reader", false)
	require.NoError(t, err)

	store.RecordRequest(created.ID)
	store.RecordRequest(created.ID)
	store.RecordSessionStart(created.ID)
	store.RecordCost(created.ID, 1200, 0.034)

	reloaded, err := NewKeyStore(path)
	require.NoError(t, err)

	authed, ok := reloaded.Authenticate(created.Key)
	require.True(t, ok)
	assert.Equal(t, int64(2), authed.Requests)
	assert.Equal(t, int64(1), authed.SessionsStarted)
	assert.Equal(t, int64(1200), authed.TokensUsed)
	assert.InDelta(t, 0.034, authed.CostUSD, 1e-9)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "ra_abc****wxyz", maskKey("ra_abcdefghijklmnopqrstwxyz"))
	assert.Equal(t, "ra_****", maskKey("ra_short"))
}
