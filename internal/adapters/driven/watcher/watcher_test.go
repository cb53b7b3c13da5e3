package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/custodia-labs/apikit/internal/core/domain"
)

// collectChanges gathers changes until every wanted path has been seen.
func collectChanges(t *testing.T, w *Watcher, want ...string) map[string]domain.FileOp {
	t.Helper()
	seen := make(map[string]domain.FileOp)
	deadline := time.After(5 * time.Second)
	for {
		missing := false
		for _, p := range want {
			if _, ok := seen[p]; !ok {
				missing = true
			}
		}
		if !missing {
			return seen
		}

		select {
		case batch := <-w.Changes():
			for _, c := range batch {
				seen[c.Path] = c.Op
			}
		case <-deadline:
			t.Fatalf("timed out, saw %v", seen)
		}
	}
}

func TestWatcher_CoalescesWrites(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	w, err := New(dir, 100*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(a, []byte{byte(i)}, 0600))
	}
	require.NoError(t, os.WriteFile(b, []byte("x"), 0600))

	seen := collectChanges(t, w, a, b)

	assert.Contains(t, []domain.FileOp{domain.FileOpCreate, domain.FileOpWrite}, seen[a])
	assert.Contains(t, []domain.FileOp{domain.FileOpCreate, domain.FileOpWrite}, seen[b])
}

func TestWatcher_NewSubdirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	w, err := New(dir, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	sub := filepath.Join(dir, "collection")
	require.NoError(t, os.Mkdir(sub, 0700))
	collectChanges(t, w, sub)

	file := filepath.Join(sub, "request.toml")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))
	collectChanges(t, w, file)
}

func TestWatcher_SkipsHiddenDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0700))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "requests"), 0700))

	w, err := New(dir, time.Second)
	require.NoError(t, err)
	defer w.Close()

	assert.ElementsMatch(t, []string{dir, filepath.Join(dir, "requests")}, w.fsw.WatchList())
}

func TestWatcher_CloseFlushesPending(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	w, err := New(dir, time.Hour)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	file := filepath.Join(dir, "pending.toml")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))
	require.Eventually(t, func() bool { return w.Pending() > 0 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, w.Close())

	select {
	case batch := <-w.Changes():
		require.NotEmpty(t, batch)
		assert.Equal(t, file, batch[0].Path)
	default:
		t.Fatal("expected flushed batch after Close")
	}
}

func TestWatcher_RunAfterClose(t *testing.T) {
	w, err := New(t.TempDir(), time.Second)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	err = w.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrWatcherClosed)
}

func TestWatcher_RunStopsOnContext(t *testing.T) {
	w, err := New(t.TempDir(), time.Second)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, w.Run(ctx), context.Canceled)
}

func TestWatcher_ErrorLogThrottled(t *testing.T) {
	w, err := New(t.TempDir(), time.Second)
	require.NoError(t, err)
	defer w.Close()

	logged := 0
	for i := 0; i < 10; i++ {
		w.errLog.Do(func() { logged++ })
	}

	assert.Equal(t, errLogBurst, logged)
}

func TestOpFor(t *testing.T) {
	tests := []struct {
		op       fsnotify.Op
		expected domain.FileOp
	}{
		{fsnotify.Create, domain.FileOpCreate},
		{fsnotify.Write, domain.FileOpWrite},
		{fsnotify.Remove, domain.FileOpRemove},
		{fsnotify.Rename, domain.FileOpRename},
		{fsnotify.Chmod, domain.FileOpChmod},
		{fsnotify.Create | fsnotify.Write, domain.FileOpCreate},
		{fsnotify.Write | fsnotify.Remove, domain.FileOpRemove},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, opFor(tt.op))
		})
	}
}

func TestToChanges(t *testing.T) {
	changes := toChanges(domain.DebounceBuffer{
		"/b": {domain.FileOpWrite},
		"/a": {domain.FileOpRemove},
		"/c": nil,
	})

	assert.Equal(t, []domain.FileChange{
		{Path: "/a", Op: domain.FileOpRemove},
		{Path: "/b", Op: domain.FileOpWrite},
		{Path: "/c"},
	}, changes)
}
