package driving

import (
	"context"

	"github.com/omnera-dev/schematools/internal/core/domain"
)

// PathFixer applies literal path substitutions to raw schema text.
type PathFixer interface {
	// FixText replaces every occurrence of rw.Old with rw.New.
	// Returns the new text and whether it differs.
	FixText(text string, rw domain.PathRewrite) (string, bool)

	// FixDirectory applies rw to every schema file in dir.
	FixDirectory(ctx context.Context, dir string, rw domain.PathRewrite) (*domain.BatchReport, error)
}
