package driven

import (
	"context"

	"github.com/omnera-dev/schematools/internal/core/domain"
)

// ProcessManager isolates platform-specific process listing and killing.
type ProcessManager interface {
	// Find returns processes whose command line contains pattern.
	// The calling process is never included.
	Find(ctx context.Context, pattern string) ([]domain.Process, error)

	// Terminate forcefully kills the process with the given PID.
	Terminate(ctx context.Context, pid int) error
}
