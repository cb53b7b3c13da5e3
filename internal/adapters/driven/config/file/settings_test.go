package file

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apikit/internal/core/domain"
)

func TestLoadSettings_Defaults(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t, domain.DefaultAppSettings(), LoadSettings(store))
}

func TestLoadSettings_FromStore(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set(KeySearchSplitOnSpace, false))
	require.NoError(t, store.Set(KeySearchLoose, true))
	require.NoError(t, store.Set(KeySearchLimit, 7))
	require.NoError(t, store.Set(KeyDebounceDelay, "1s"))

	s := LoadSettings(store)

	assert.False(t, s.Search.SplitOnSpace)
	assert.True(t, s.Search.Loose)
	assert.Equal(t, 7, s.Search.Limit)
	assert.Equal(t, time.Second, s.Debounce.Delay)
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	want := domain.DefaultAppSettings()
	want.Search.Loose = true
	want.Search.Limit = 3
	want.Debounce.Delay = 750 * time.Millisecond
	require.NoError(t, SaveSettings(store, want))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, want, LoadSettings(reloaded))
}
