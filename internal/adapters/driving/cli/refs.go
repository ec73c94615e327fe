package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var fixRefsCmd = &cobra.Command{
	Use:   "fix-refs [dir]",
	Short: "Point internal $ref pointers at the shared automations schema",
	Long: `Rewrites every "$ref" that starts with the internal-definition prefix
("#/definitions/" by default) so it points into the configured target file.
Only *.schema.json files directly inside the directory are processed, and a
file is written back only when a reference changed.

Without an argument the directory comes from refs.dir.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFixRefs,
}

func init() {
	rootCmd.AddCommand(fixRefsCmd)
}

func runFixRefs(cmd *cobra.Command, args []string) error {
	if refRewriter == nil {
		return errors.New("reference rewriter not configured")
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	dir := argOr(args, settings.Refs.Dir)
	report, err := refRewriter.FixDirectory(cmd.Context(), dir, settings.Refs.Rule)
	if err != nil {
		return fmt.Errorf("failed to fix references: %w", err)
	}

	printBatch(cmd, report, "Updated")
	return nil
}
