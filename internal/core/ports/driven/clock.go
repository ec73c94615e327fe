package driven

import (
	"context"
	"time"
)

// Clock abstracts wall-clock time and waiting.
type Clock interface {
	// Now returns the current local time.
	Now() time.Time

	// Sleep waits for d or until ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}
