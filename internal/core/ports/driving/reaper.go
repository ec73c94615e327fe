package driving

import (
	"context"

	"github.com/omnera-dev/schematools/internal/core/domain"
)

// ProcessReaper terminates orphaned processes on a best-effort basis.
type ProcessReaper interface {
	// Reap kills every process whose command line contains pattern and
	// reports which ones survived.
	Reap(ctx context.Context, pattern string) (*domain.ReapReport, error)
}
