package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/omnera-dev/schematools/internal/adapters/driven/catalog"
	"github.com/omnera-dev/schematools/internal/adapters/driven/clock"
	"github.com/omnera-dev/schematools/internal/adapters/driven/codec/jsondoc"
	configfile "github.com/omnera-dev/schematools/internal/adapters/driven/config/file"
	"github.com/omnera-dev/schematools/internal/adapters/driven/process"
	"github.com/omnera-dev/schematools/internal/adapters/driven/storage/file"
	"github.com/omnera-dev/schematools/internal/adapters/driving/cli"
	"github.com/omnera-dev/schematools/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = ""

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	if err := cli.Execute(ctx, buildServices); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "✗ Error: %v\n", err)
		os.Exit(1)
	}
}

// buildServices wires the driven adapters into the core services.
func buildServices(configPath string) (*cli.Services, error) {
	configStore, err := configfile.NewConfigStore(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}

	fieldCatalog, err := catalog.New()
	if err != nil {
		return nil, err
	}

	files := file.NewFileStore()
	codec := jsondoc.New()
	sysClock := clock.System{}

	return &cli.Services{
		Settings: settingsService,
		Refs:     services.NewRefRewriter(files, codec),
		Paths:    services.NewPathFixer(files),
		Titles:   services.NewTitleInjector(files, codec),
		Reaper:   services.NewProcessReaper(process.New(), sysClock, settings.Reaper.Settle),
		License:  services.NewLicenseStamper(files, sysClock, settings.License.Product, settings.License.ChangeYears),
		Fields:   services.NewFieldSplitter(files, codec, fieldCatalog),
	}, nil
}
