// Package clipboard implements driven.Clipboard on top of the host clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/apikit/internal/core/domain"
	"github.com/custodia-labs/apikit/internal/core/ports/driven"
	"github.com/custodia-labs/apikit/internal/logger"
)

// Ensure Clipboard implements the interface.
var _ driven.Clipboard = (*Clipboard)(nil)

// Clipboard reads and writes the system clipboard.
type Clipboard struct {
	unsupported bool
	read        func() (string, error)
	write       func(string) error
}

// New creates a clipboard backed by the host's clipboard tools
// (pbcopy, xclip/xsel/wl-copy, or the Windows API).
func New() *Clipboard {
	return &Clipboard{
		unsupported: clipboard.Unsupported,
		read:        clipboard.ReadAll,
		write:       clipboard.WriteAll,
	}
}

// ReadText returns the current clipboard text.
func (c *Clipboard) ReadText() (string, error) {
	if c.unsupported {
		return "", domain.ErrClipboardUnavailable
	}
	text, err := c.read()
	if err != nil {
		logger.Warn("Clipboard read failed: %v", err)
		return "", fmt.Errorf("read clipboard: %w: %v", domain.ErrClipboardUnavailable, err)
	}
	return text, nil
}

// WriteText replaces the clipboard contents with text.
func (c *Clipboard) WriteText(text string) error {
	if c.unsupported {
		return domain.ErrClipboardUnavailable
	}
	if err := c.write(text); err != nil {
		logger.Warn("Clipboard write failed: %v", err)
		return fmt.Errorf("write clipboard: %w: %v", domain.ErrClipboardUnavailable, err)
	}
	logger.Debug("Copied %d bytes to clipboard", len(text))
	return nil
}
