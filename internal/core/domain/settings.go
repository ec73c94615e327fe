package domain

import (
	"path"
	"time"
)

// DefaultSchemasRoot is where the documentation schemas live.
const DefaultSchemasRoot = "docs/specifications/schemas"

// SchemaFilePattern selects schema files inside a directory.
const SchemaFilePattern = "*.schema.json"

// AppSettings holds the resolved tool configuration.
type AppSettings struct {
	SchemasRoot string
	Refs        RefSettings
	Paths       PathSettings
	Titles      TitleTable
	License     LicenseSettings
	Reaper      ReaperSettings
	Fields      FieldSettings
}

// RefSettings configures the reference rewriter.
type RefSettings struct {
	Dir  string
	Rule RefRule
}

// PathSettings configures the path-string fixer.
type PathSettings struct {
	Dir     string
	Rewrite PathRewrite
}

// LicenseSettings configures the license stamper.
type LicenseSettings struct {
	Path        string
	Product     string
	ChangeYears int
}

// ReaperSettings configures the process reaper.
type ReaperSettings struct {
	Pattern string
	Settle  time.Duration
}

// FieldSettings configures the field splitter.
type FieldSettings struct {
	Schema string
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return SettingsForRoot(DefaultSchemasRoot)
}

// SettingsForRoot returns the default settings with every schema location
// resolved under root.
func SettingsForRoot(root string) AppSettings {
	return AppSettings{
		SchemasRoot: root,
		Refs: RefSettings{
			Dir:  path.Join(root, "automations", "actions"),
			Rule: DefaultRefRule(),
		},
		Paths: PathSettings{
			Dir:     path.Join(root, "tables", "fields"),
			Rewrite: DefaultPathRewrite(),
		},
		Titles: DefaultTitleTable(),
		License: LicenseSettings{
			Path:        DefaultLicensePath,
			Product:     DefaultLicenseProduct,
			ChangeYears: DefaultChangeYears,
		},
		Reaper: ReaperSettings{
			Pattern: DefaultReapPattern,
			Settle:  DefaultSettleDelay,
		},
		Fields: FieldSettings{
			Schema: path.Join(root, DefaultTablesSchema),
		},
	}
}
