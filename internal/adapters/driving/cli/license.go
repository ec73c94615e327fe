package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omnera-dev/schematools/internal/core/domain"
)

var stampLicenseCmd = &cobra.Command{
	Use:   "stamp-license <version>",
	Short: "Update the version and dates in the license file",
	Long: `Sets the licensed work version, the copyright year and the change date
in the Business Source License file. The change date is today plus
license.change_years (4 by default). The file is written once, after every
field has been computed.`,
	Args: versionArg,
	RunE: runStampLicense,
}

func init() {
	rootCmd.AddCommand(stampLicenseCmd)
}

func versionArg(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return domain.ErrVersionRequired
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func runStampLicense(cmd *cobra.Command, args []string) error {
	if licenseStamper == nil {
		return errors.New("license stamper not configured")
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	path := settings.License.Path
	report, err := licenseStamper.Stamp(cmd.Context(), path, args[0])
	if err != nil {
		return fmt.Errorf("failed to stamp license: %w", err)
	}

	p := newPrinter(cmd)
	for _, field := range report.Missing {
		p.warn("No %s found in %s", field, path)
	}
	if !report.Modified {
		p.success("%s is already up to date", path)
		return nil
	}
	p.success("Updated %s", path)
	p.detail("Licensed Work: %s %s", report.Stamp.Product, report.Stamp.Version)
	p.detail("Copyright year: %d", report.Stamp.Year)
	p.detail("Change Date: %s", report.Stamp.ChangeDateString())
	return nil
}
