package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apikit/internal/core/domain"
	"github.com/custodia-labs/apikit/internal/logger"
	"github.com/custodia-labs/apikit/internal/util"
)

var watchDelay time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Print debounced file changes in a workspace",
	Long: `Watches a workspace directory and prints one batch of changes per quiet
period. Repeated events for the same file inside a burst are collapsed to
the most recent one. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDelay, "delay", domain.DefaultDebounceDelay, "quiet period before a batch is printed")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if newWatcher == nil {
		return errors.New("watcher not configured")
	}

	dir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args[0], err)
	}

	delay := settings.Debounce.Delay
	if cmd.Flags().Changed("delay") {
		delay = watchDelay
	}

	w, err := newWatcher(dir, delay)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ctx := cmd.Context()
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()

	cmd.Printf("Watching %s (delay %s)\n", dir, delay)

	for {
		select {
		case batch := <-w.Changes():
			printChanges(cmd, batch)

		case err := <-done:
			if closeErr := w.Close(); closeErr != nil {
				logger.Warn("Failed to close watcher: %v", closeErr)
			}
			// Close flushes whatever was still buffered.
			drainChanges(cmd, w.Changes())
			if err != nil && !errors.Is(err, ctx.Err()) {
				return fmt.Errorf("watch failed: %w", err)
			}
			return nil
		}
	}
}

func drainChanges(cmd *cobra.Command, changes <-chan []domain.FileChange) {
	for {
		select {
		case batch := <-changes:
			printChanges(cmd, batch)
		default:
			return
		}
	}
}

func printChanges(cmd *cobra.Command, batch []domain.FileChange) {
	cmd.Printf("%s:\n", util.Pluralize(len(batch), "change"))
	for _, c := range batch {
		cmd.Printf("  %-7s %s\n", c.Op, c.Path)
	}
}
