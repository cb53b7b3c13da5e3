// Command apikit is the entry point for the apikit CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/custodia-labs/apikit/internal/adapters/driven/clipboard"
	"github.com/custodia-labs/apikit/internal/adapters/driven/config/file"
	"github.com/custodia-labs/apikit/internal/adapters/driven/watcher"
	"github.com/custodia-labs/apikit/internal/adapters/driving/cli"
	"github.com/custodia-labs/apikit/internal/core/domain"
	"github.com/custodia-labs/apikit/internal/core/ports/driven"
	"github.com/custodia-labs/apikit/internal/core/services"
	"github.com/custodia-labs/apikit/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Search:    services.NewSearchService(services.NewFuzzyRanker()),
		Clipboard: clipboard.New(),
		NewWatcher: func(dir string, delay time.Duration) (driven.Watcher, error) {
			return watcher.New(dir, delay)
		},
		LoadItems:  file.LoadItems,
		OpenConfig: openConfig,
	})

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func openConfig(dir string) (domain.AppSettings, error) {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return domain.AppSettings{}, err
	}
	logger.Debug("Config: %s", store.Path())
	return file.LoadSettings(store), nil
}
