package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var fixPathsCmd = &cobra.Command{
	Use:   "fix-paths [dir]",
	Short: "Fix relative paths to the common definitions",
	Long: `Replaces every occurrence of paths.old with paths.new in the
*.schema.json files of a directory. The default rewrite turns
"../common/ into "../../common/ and is safe to run repeatedly.

Without an argument the directory comes from paths.dir.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFixPaths,
}

func init() {
	rootCmd.AddCommand(fixPathsCmd)
}

func runFixPaths(cmd *cobra.Command, args []string) error {
	if pathFixer == nil {
		return errors.New("path fixer not configured")
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	dir := argOr(args, settings.Paths.Dir)
	report, err := pathFixer.FixDirectory(cmd.Context(), dir, settings.Paths.Rewrite)
	if err != nil {
		return fmt.Errorf("failed to fix paths: %w", err)
	}

	printBatch(cmd, report, "Fixed")
	return nil
}
