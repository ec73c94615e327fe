package driven

import "github.com/omnera-dev/schematools/internal/core/domain"

// FieldCatalog provides the specific field types and their shared templates.
type FieldCatalog interface {
	// FieldTypes returns every specific field type in catalogue order.
	FieldTypes() ([]domain.FieldType, error)

	// Template returns the schema skeleton for a field kind.
	Template(kind domain.FieldKind) (*domain.FieldTemplate, error)
}
