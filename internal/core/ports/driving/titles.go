package driving

import (
	"context"

	"github.com/omnera-dev/schematools/internal/core/domain"
)

// TitleInjector inserts title annotations into schema files.
type TitleInjector interface {
	// Inject returns obj with title placed after $id and $schema.
	// Returns the original object and false if a title is already present.
	Inject(obj *domain.Object, title string) (*domain.Object, bool)

	// InjectAll processes every entry of table relative to root.
	// Per-file failures are recorded in the report; the batch continues.
	InjectAll(ctx context.Context, root string, table domain.TitleTable) (*domain.BatchReport, error)
}
