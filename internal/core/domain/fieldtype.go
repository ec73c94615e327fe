package domain

// FieldKind groups field types sharing the same property template.
type FieldKind string

const (
	FieldKindText   FieldKind = "text"
	FieldKindNumber FieldKind = "number"
)

// GenericFieldTitles are the titles of the catch-all field schemas that the
// field splitter replaces with specific types.
var GenericFieldTitles = map[string]FieldKind{
	"Text Field":   FieldKindText,
	"Number Field": FieldKindNumber,
}

// FieldsAnyOfPath locates the field type union inside the tables schema.
var FieldsAnyOfPath = []string{"items", "properties", "fields", "items", "anyOf"}

// DefaultTablesSchema is the tables schema path relative to the schemas root.
const DefaultTablesSchema = "tables/tables.schema.json"

// FieldType describes one specific field type.
type FieldType struct {
	Type          string
	Title         string
	Kind          FieldKind
	Description   string
	BusinessRules []string
	UserStories   []string

	// Properties are merged into the kind's template, replacing same-named keys.
	Properties *Object
}

// FieldTemplate is the shared schema skeleton for a kind. Strings in it may
// contain the placeholders {type} and {title}.
type FieldTemplate struct {
	Kind   FieldKind
	Schema *Object
}

// SplitReport summarises a field split.
type SplitReport struct {
	Removed  []string
	Added    []FieldType
	Kept     int
	Modified bool
}
