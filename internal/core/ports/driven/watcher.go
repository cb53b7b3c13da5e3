package driven

import (
	"context"

	"github.com/custodia-labs/apikit/internal/core/domain"
)

// Watcher reports coalesced file changes under a workspace directory.
type Watcher interface {
	// Run blocks until ctx is done or the watcher is closed.
	Run(ctx context.Context) error

	// Changes delivers one batch per debounce flush.
	Changes() <-chan []domain.FileChange

	// Close stops watching and flushes pending changes.
	Close() error
}
