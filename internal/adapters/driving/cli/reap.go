package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/omnera-dev/schematools/internal/core/domain"
)

var reapCmd = &cobra.Command{
	Use:   "reap [pattern]",
	Short: "Kill leftover test runner processes",
	Long: `Finds processes whose command line contains the pattern, force-kills
them, waits for them to exit and reports any that are still running.
Survivors are a warning, not an error.

Without an argument the pattern comes from reaper.pattern ("bun test").`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReap,
}

func init() {
	rootCmd.AddCommand(reapCmd)
}

func runReap(cmd *cobra.Command, args []string) error {
	if processReaper == nil {
		return errors.New("process reaper not configured")
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	pattern := argOr(args, settings.Reaper.Pattern)
	report, err := processReaper.Reap(cmd.Context(), pattern)
	if err != nil {
		return fmt.Errorf("failed to reap processes: %w", err)
	}

	printReap(cmd, report)
	return nil
}

func printReap(cmd *cobra.Command, report *domain.ReapReport) {
	p := newPrinter(cmd)
	if report.NothingFound() {
		p.success("No zombie processes matching %q", report.Pattern)
		return
	}

	p.line("Found %d process(es) matching %q", len(report.Found), report.Pattern)
	for _, proc := range report.Killed {
		p.success("Killed %d", proc.PID)
		p.detail("%s", proc.Command)
	}
	for _, f := range report.Failures {
		p.fail("Could not kill %d: %v", f.Process.PID, f.Err)
	}

	if report.Clean() {
		p.success("All matching processes terminated")
		return
	}
	pids := make([]string, len(report.Survivors))
	for i, proc := range report.Survivors {
		pids[i] = strconv.Itoa(proc.PID)
	}
	p.warn("%d process(es) still running: %s", len(report.Survivors), strings.Join(pids, ", "))
}
