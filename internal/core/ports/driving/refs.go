package driving

import (
	"context"

	"github.com/omnera-dev/schematools/internal/core/domain"
)

// RefRewriter turns internal definition references into external file references.
type RefRewriter interface {
	// Rewrite rewrites matching $ref values in doc in place.
	// Returns true if any value changed.
	Rewrite(doc domain.Value, rule domain.RefRule) bool

	// FixDirectory rewrites every schema file in dir and writes back
	// only the files that changed.
	FixDirectory(ctx context.Context, dir string, rule domain.RefRule) (*domain.BatchReport, error)
}
