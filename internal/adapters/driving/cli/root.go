// Package cli provides the cobra command tree for schematools.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/omnera-dev/schematools/internal/core/ports/driving"
	"github.com/omnera-dev/schematools/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose    bool
	configPath string
)

// Services used by the commands. Execute fills them from the factory;
// tests assign them directly.
var (
	settingsService driving.SettingsService
	refRewriter     driving.RefRewriter
	pathFixer       driving.PathFixer
	titleInjector   driving.TitleInjector
	processReaper   driving.ProcessReaper
	licenseStamper  driving.LicenseStamper
	fieldSplitter   driving.FieldSplitter
)

// Services bundles the driving ports behind the commands.
type Services struct {
	Settings driving.SettingsService
	Refs     driving.RefRewriter
	Paths    driving.PathFixer
	Titles   driving.TitleInjector
	Reaper   driving.ProcessReaper
	License  driving.LicenseStamper
	Fields   driving.FieldSplitter
}

// ServiceFactory builds the services once flags are parsed.
// configPath is empty when --config was not given.
type ServiceFactory func(configPath string) (*Services, error)

var serviceFactory ServiceFactory

var rootCmd = &cobra.Command{
	Use:   "schematools",
	Short: "Maintenance utilities for the JSON-Schema documentation tree",
	Long: `schematools bundles the maintenance tasks for the schema documentation tree:
rewriting $ref paths, fixing relative paths, adding titles, splitting generic
field schemas, stamping the license and cleaning up leftover test runners.

Settings are read from .schematools.toml in the working directory, or from
the file given with --config.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .schematools.toml)")
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if serviceFactory == nil {
		return nil
	}
	svc, err := serviceFactory(configPath)
	if err != nil {
		return err
	}
	setServices(svc)
	return nil
}

func setServices(svc *Services) {
	settingsService = svc.Settings
	refRewriter = svc.Refs
	pathFixer = svc.Paths
	titleInjector = svc.Titles
	processReaper = svc.Reaper
	licenseStamper = svc.License
	fieldSplitter = svc.Fields
}

// Execute runs the root command with ctx. factory is called after flag
// parsing to build the services.
func Execute(ctx context.Context, factory ServiceFactory) error {
	serviceFactory = factory
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}
