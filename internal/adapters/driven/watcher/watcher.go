// Package watcher reports debounced file changes inside a workspace directory.
//
// Saving a request file typically produces a burst of create, write and chmod
// events. Every event is fed to a KeyedDebouncer keyed by path, so consumers
// receive one batch per quiet period holding the latest operation per file.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/apikit/internal/core/domain"
	"github.com/custodia-labs/apikit/internal/core/ports/driven"
	"github.com/custodia-labs/apikit/internal/core/services"
	"github.com/custodia-labs/apikit/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.Watcher = (*Watcher)(nil)

// changesBuffer is the number of batches held for a slow reader.
const changesBuffer = 64

// Watcher errors are logged for the first errLogBurst occurrences, then at
// most once per errLogInterval.
const (
	errLogBurst    = 3
	errLogInterval = 10 * time.Second
)

// Watcher watches a directory tree and emits coalesced changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce *services.KeyedDebouncer
	changes  chan []domain.FileChange
	errLog   *rate.Sometimes

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
	running sync.WaitGroup
}

// New starts watching root and every directory below it.
// Hidden directories such as .git are skipped.
func New(root string, delay time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		changes: make(chan []domain.FileChange, changesBuffer),
		closeCh: make(chan struct{}),
		errLog:  &rate.Sometimes{First: errLogBurst, Interval: errLogInterval},
	}
	w.debounce = services.NewKeyedDebouncer(w.deliver, delay)

	if err := w.addTree(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	logger.Debug("Watching %s (%d directories)", root, len(fsw.WatchList()))
	return w, nil
}

// Run processes file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return domain.ErrWatcherClosed
	}
	w.running.Add(1)
	w.mu.Unlock()
	defer w.running.Done()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-w.closeCh:
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			// Overflow errors arrive in storms; the events still get through.
			w.errLog.Do(func() { logger.Warn("Watcher error: %v", err) })
		}
	}
}

// Changes delivers one batch per debounce flush. The channel is never closed.
func (w *Watcher) Changes() <-chan []domain.FileChange {
	return w.changes
}

// Pending returns the number of paths waiting to be flushed.
func (w *Watcher) Pending() int {
	return w.debounce.Pending()
}

// Close stops watching and flushes pending changes.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.running.Wait()
	w.debounce.Flush()
	return err
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				logger.Warn("Cannot watch %s: %v", event.Name, err)
			}
		}
	}
	w.debounce.Call(event.Name, opFor(event.Op))
}

// addTree adds root and its non-hidden subdirectories.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

// deliver is the debounce callback.
func (w *Watcher) deliver(buf domain.DebounceBuffer) {
	batch := toChanges(buf)
	logger.Debug("Delivering %d changes", len(batch))

	select {
	case w.changes <- batch:
		return
	case <-w.closeCh:
	}

	// Closing: keep the batch only if there is room.
	select {
	case w.changes <- batch:
	default:
		logger.Error("Watcher closed, dropping %d changes", len(batch))
	}
}

// toChanges converts a flushed buffer into changes sorted by path.
func toChanges(buf domain.DebounceBuffer) []domain.FileChange {
	out := make([]domain.FileChange, 0, buf.Keys())
	for path, args := range buf {
		change := domain.FileChange{Path: path}
		if len(args) > 0 {
			if op, ok := args[0].(domain.FileOp); ok {
				change.Op = op
			}
		}
		out = append(out, change)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// opFor maps fsnotify operations, most destructive first.
func opFor(op fsnotify.Op) domain.FileOp {
	switch {
	case op.Has(fsnotify.Remove):
		return domain.FileOpRemove
	case op.Has(fsnotify.Rename):
		return domain.FileOpRename
	case op.Has(fsnotify.Create):
		return domain.FileOpCreate
	case op.Has(fsnotify.Write):
		return domain.FileOpWrite
	default:
		return domain.FileOpChmod
	}
}
