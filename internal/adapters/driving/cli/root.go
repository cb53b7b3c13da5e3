// Package cli implements the apikit command line with cobra.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apikit/internal/core/domain"
	"github.com/custodia-labs/apikit/internal/core/ports/driven"
	"github.com/custodia-labs/apikit/internal/core/ports/driving"
	"github.com/custodia-labs/apikit/internal/logger"
)

// Services bundles the dependencies commands use.
type Services struct {
	// Search ranks items for the search command.
	Search driving.SearchService

	// Clipboard backs the copy command.
	Clipboard driven.Clipboard

	// NewWatcher creates a debounced watcher for the watch command.
	NewWatcher func(dir string, delay time.Duration) (driven.Watcher, error)

	// LoadItems reads searchable items from a file.
	LoadItems func(path string) ([]domain.Item, error)

	// OpenConfig loads settings from the config directory ("" for default).
	OpenConfig func(dir string) (domain.AppSettings, error)
}

var (
	version = "dev"

	verbose   bool
	configDir string

	searchService driving.SearchService
	clipboardPort driven.Clipboard
	newWatcher    func(dir string, delay time.Duration) (driven.Watcher, error)
	loadItems     func(path string) ([]domain.Item, error)
	openConfig    func(dir string) (domain.AppSettings, error)

	settings = domain.DefaultAppSettings()
)

var rootCmd = &cobra.Command{
	Use:   "apikit",
	Short: "Utilities for working with API request collections",
	Long: `apikit ranks requests, collections and workspaces with fuzzy search,
watches workspaces for debounced file changes, and bundles small helpers
for IDs, sizes and the clipboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if openConfig == nil {
			return nil
		}
		loaded, err := openConfig(configDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		settings = loaded
		logger.Debug("Settings: %+v", settings)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.apikit)")
}

// SetServices injects the services commands depend on.
func SetServices(s Services) {
	searchService = s.Search
	clipboardPort = s.Clipboard
	newWatcher = s.NewWatcher
	loadItems = s.LoadItems
	openConfig = s.OpenConfig
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Commands that block stop when ctx is done.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
