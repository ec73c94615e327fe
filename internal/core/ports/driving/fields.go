package driving

import (
	"context"

	"github.com/omnera-dev/schematools/internal/core/domain"
)

// FieldSplitter replaces generic field schemas with specific field types.
type FieldSplitter interface {
	// Build renders the schema for a single field type.
	Build(ft domain.FieldType) (*domain.Object, error)

	// Split rewrites the tables schema at path.
	Split(ctx context.Context, path string) (*domain.SplitReport, error)
}
