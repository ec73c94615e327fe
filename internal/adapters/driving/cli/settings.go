package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage tool settings",
	Long: `View the resolved settings or write them to the config file.

Settings come from .schematools.toml (or --config); anything not set there
falls back to the built-in defaults.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current settings to the config file",
	Long: `Writes every resolved setting, defaults included, to the config file so
they can be edited in place.`,
	RunE: runSettingsInit,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsInitCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	cmd.Println()

	cmd.Println("[Schemas]")
	cmd.Printf("  Root: %s\n", settings.SchemasRoot)
	cmd.Println()

	cmd.Println("[References]")
	cmd.Printf("  Directory: %s\n", settings.Refs.Dir)
	cmd.Printf("  Prefix: %s\n", settings.Refs.Rule.Prefix)
	cmd.Printf("  Target: %s\n", settings.Refs.Rule.Target)
	cmd.Printf("  Traverse arrays: %t\n", settings.Refs.Rule.TraverseArrays)
	cmd.Println()

	cmd.Println("[Paths]")
	cmd.Printf("  Directory: %s\n", settings.Paths.Dir)
	cmd.Printf("  Replace: %s\n", settings.Paths.Rewrite.Old)
	cmd.Printf("  With: %s\n", settings.Paths.Rewrite.New)
	cmd.Println()

	cmd.Println("[License]")
	cmd.Printf("  File: %s\n", settings.License.Path)
	cmd.Printf("  Product: %s\n", settings.License.Product)
	cmd.Printf("  Change years: %d\n", settings.License.ChangeYears)
	cmd.Println()

	cmd.Println("[Reaper]")
	cmd.Printf("  Pattern: %s\n", settings.Reaper.Pattern)
	cmd.Printf("  Settle delay: %s\n", settings.Reaper.Settle)
	cmd.Println()

	cmd.Println("[Fields]")
	cmd.Printf("  Schema: %s\n", settings.Fields.Schema)
	cmd.Println()

	cmd.Printf("[Titles] (%d)\n", settings.Titles.Len())
	for _, entry := range settings.Titles.Entries() {
		cmd.Printf("  %s: %s\n", entry.Path, entry.Title)
	}

	return nil
}

func runSettingsInit(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	newPrinter(cmd).success("Wrote settings to %s", settingsService.ConfigPath())
	return nil
}
