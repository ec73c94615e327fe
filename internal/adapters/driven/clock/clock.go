// Package clock provides the wall-clock implementation of driven.Clock.
package clock

import (
	"context"
	"time"

	"github.com/omnera-dev/schematools/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clock = System{}

// System reads the local wall clock.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// Sleep waits for d. It returns ctx.Err() if ctx is done first.
func (System) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
