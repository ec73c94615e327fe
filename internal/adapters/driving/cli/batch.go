package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/omnera-dev/schematools/internal/core/domain"
)

// loadSettings resolves settings through the settings service.
func loadSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// argOr returns the first positional argument, or fallback.
func argOr(args []string, fallback string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return fallback
}

// printBatch writes one line per changed, skipped or failed file and a
// closing summary. Failures go to stderr.
func printBatch(cmd *cobra.Command, report *domain.BatchReport, verb string) {
	p := newPrinter(cmd)
	for _, res := range report.Results {
		switch res.Status {
		case domain.FileModified:
			if res.Detail != "" {
				p.success("%s %s (%s)", verb, res.Path, res.Detail)
			} else {
				p.success("%s %s", verb, res.Path)
			}
		case domain.FileSkipped:
			p.warn("Skipped %s: %s", res.Path, res.Detail)
		case domain.FileFailed:
			p.fail("%s: %v", res.Path, res.Err)
		}
	}

	if report.Total() == 0 {
		p.line("No schema files found.")
		return
	}
	p.line("%d file(s): %d %s, %d unchanged, %d skipped, %d failed",
		report.Total(),
		report.Count(domain.FileModified), strings.ToLower(verb),
		report.Count(domain.FileUnchanged),
		report.Count(domain.FileSkipped),
		report.Count(domain.FileFailed),
	)
}
