package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omnera-dev/schematools/internal/core/domain"
)

var splitFieldsCmd = &cobra.Command{
	Use:   "split-fields [schema]",
	Short: "Split the generic Text and Number field schemas",
	Long: `Replaces the generic "Text Field" and "Number Field" entries of the
tables schema field union with one schema per specific field type
(single-line-text, email, currency and so on). Other entries keep their
order. Running it on a schema that is already split changes nothing.

Without an argument the schema path comes from fields.schema.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSplitFields,
}

func init() {
	rootCmd.AddCommand(splitFieldsCmd)
}

func runSplitFields(cmd *cobra.Command, args []string) error {
	if fieldSplitter == nil {
		return errors.New("field splitter not configured")
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	path := argOr(args, settings.Fields.Schema)
	report, err := fieldSplitter.Split(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("failed to split fields: %w", err)
	}

	p := newPrinter(cmd)
	if !report.Modified {
		p.success("No generic field schemas in %s", path)
		return nil
	}

	var text, number []domain.FieldType
	for _, ft := range report.Added {
		if ft.Kind == domain.FieldKindNumber {
			number = append(number, ft)
		} else {
			text = append(text, ft)
		}
	}
	p.success("Split generic fields into %d text field types and %d number field types", len(text), len(number))
	p.success("Total field types in schema: %d", len(report.Added)+report.Kept)

	printFieldTypes(p, "Text field types created:", text)
	printFieldTypes(p, "Number field types created:", number)
	return nil
}

func printFieldTypes(p *printer, heading string, types []domain.FieldType) {
	if len(types) == 0 {
		return
	}
	p.line("")
	p.line("%s", heading)
	for _, ft := range types {
		p.line("  - %s (type: %s)", ft.Title, ft.Type)
	}
}
