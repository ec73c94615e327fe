package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var addTitlesCmd = &cobra.Command{
	Use:   "add-titles [root]",
	Short: "Add missing titles to the top-level schemas",
	Long: `Inserts a "title" into each schema listed in the title table, right
after "$id" and "$schema". Schemas that already have a title are left alone.
Missing or unreadable files are reported and the remaining files are still
processed.

Without an argument the root comes from schemas.root. Extra entries can be
added under [titles] in the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAddTitles,
}

func init() {
	rootCmd.AddCommand(addTitlesCmd)
}

func runAddTitles(cmd *cobra.Command, args []string) error {
	if titleInjector == nil {
		return errors.New("title injector not configured")
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	root := argOr(args, settings.SchemasRoot)
	report, err := titleInjector.InjectAll(cmd.Context(), root, settings.Titles)
	if err != nil {
		return fmt.Errorf("failed to add titles: %w", err)
	}

	printBatch(cmd, report, "Titled")
	return nil
}
