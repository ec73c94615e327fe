package driving

import (
	"context"

	"github.com/omnera-dev/schematools/internal/core/domain"
)

// LicenseStamper updates the version and date fields of a BSL license file.
type LicenseStamper interface {
	// Apply computes the stamped text without touching any file.
	Apply(text string, stamp domain.LicenseStamp) (string, domain.StampReport)

	// Stamp updates the license file at path for version.
	Stamp(ctx context.Context, path, version string) (*domain.StampReport, error)
}
