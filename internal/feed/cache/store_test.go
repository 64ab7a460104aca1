package cache_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrollfeed/scrollfeed/internal/feed/cache"
)

func TestFileStore_SetGet(t *testing.T) {
	store, err := cache.NewFileStore(t.TempDir(), true, time.Hour)
	require.NoError(t, err)

	payload := json.RawMessage(`[{"label":"Item #0"}]`)
	require.NoError(t, store.Set("feed-100-20-page-0", payload))

	entry, err := store.Get("feed-100-20-page-0")
	require.NoError(t, err)
	assert.Equal(t, "feed-100-20-page-0", entry.Key)
	assert.JSONEq(t, string(payload), string(entry.Data))
	assert.False(t, entry.IsExpired())
}

func TestFileStore_GetMissing(t *testing.T) {
	store, err := cache.NewFileStore(t.TempDir(), true, time.Hour)
	require.NoError(t, err)

	_, err = store.Get("absent")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestFileStore_ExpiredEntryIsEvicted(t *testing.T) {
	store, err := cache.NewFileStore(t.TempDir(), true, -time.Second)
	require.NoError(t, err)

	require.NoError(t, store.Set("stale", json.RawMessage(`[]`)))

	_, err = store.Get("stale")
	assert.ErrorIs(t, err, cache.ErrExpired)

	// The expired file is removed, so the next read misses cleanly.
	_, err = store.Get("stale")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestFileStore_Disabled(t *testing.T) {
	store, err := cache.NewFileStore("", false, time.Hour)
	require.NoError(t, err)
	assert.False(t, store.Enabled())

	_, err = store.Get("key")
	assert.ErrorIs(t, err, cache.ErrDisabled)
	assert.ErrorIs(t, store.Set("key", json.RawMessage(`[]`)), cache.ErrDisabled)
	assert.ErrorIs(t, store.Clear(), cache.ErrDisabled)
}

func TestFileStore_EmptyKey(t *testing.T) {
	store, err := cache.NewFileStore(t.TempDir(), true, time.Hour)
	require.NoError(t, err)

	_, err = store.Get("")
	assert.ErrorIs(t, err, cache.ErrInvalidKey)
	assert.ErrorIs(t, store.Set("", json.RawMessage(`[]`)), cache.ErrInvalidKey)
}

func TestFileStore_Clear(t *testing.T) {
	store, err := cache.NewFileStore(t.TempDir(), true, time.Hour)
	require.NoError(t, err)

	require.NoError(t, store.Set("a", json.RawMessage(`[]`)))
	require.NoError(t, store.Set("b", json.RawMessage(`[]`)))
	require.NoError(t, store.Clear())

	_, err = store.Get("a")
	assert.ErrorIs(t, err, cache.ErrNotFound)
	_, err = store.Get("b")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestFileStore_KeySanitization(t *testing.T) {
	dir := t.TempDir()
	store, err := cache.NewFileStore(dir, true, time.Hour)
	require.NoError(t, err)

	// Keys with separators must not escape the cache directory.
	require.NoError(t, store.Set("../escape/attempt", json.RawMessage(`[]`)))

	entry, err := store.Get("../escape/attempt")
	require.NoError(t, err)
	assert.Equal(t, "../escape/attempt", entry.Key)
}

func TestValidateTTL(t *testing.T) {
	tests := []struct {
		name    string
		ttl     time.Duration
		wantErr bool
	}{
		{name: "default", ttl: cache.DefaultTTL, wantErr: false},
		{name: "minimum", ttl: cache.MinTTL, wantErr: false},
		{name: "maximum", ttl: cache.MaxTTL, wantErr: false},
		{name: "below minimum", ttl: time.Second, wantErr: true},
		{name: "above maximum", ttl: cache.MaxTTL + time.Hour, wantErr: true},
		{name: "zero", ttl: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cache.ValidateTTL(tt.ttl)
			if tt.wantErr {
				assert.ErrorIs(t, err, cache.ErrInvalidTTL)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTTLFromEnv(t *testing.T) {
	t.Setenv(cache.EnvTTLSeconds, "120")

	ttl, err := cache.TTLFromEnv(cache.DefaultTTL)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, ttl)
}

func TestTTLFromEnv_UnsetUsesFallback(t *testing.T) {
	t.Setenv(cache.EnvTTLSeconds, "")

	ttl, err := cache.TTLFromEnv(cache.DefaultTTL)
	require.NoError(t, err)
	assert.Equal(t, cache.DefaultTTL, ttl)
}

func TestTTLFromEnv_OutOfRange(t *testing.T) {
	t.Setenv(cache.EnvTTLSeconds, "1")

	_, err := cache.TTLFromEnv(cache.DefaultTTL)
	assert.ErrorIs(t, err, cache.ErrInvalidTTL)
}

func TestEnabledFromEnv(t *testing.T) {
	t.Setenv(cache.EnvEnabled, "false")
	assert.False(t, cache.EnabledFromEnv(true))

	t.Setenv(cache.EnvEnabled, "true")
	assert.True(t, cache.EnabledFromEnv(false))

	t.Setenv(cache.EnvEnabled, "not-a-bool")
	assert.True(t, cache.EnabledFromEnv(true))
}

func TestDirFromEnv(t *testing.T) {
	t.Setenv(cache.EnvDir, "/tmp/custom-cache")
	assert.Equal(t, "/tmp/custom-cache", cache.DirFromEnv("/fallback"))

	t.Setenv(cache.EnvDir, "")
	assert.Equal(t, "/fallback", cache.DirFromEnv("/fallback"))
}
