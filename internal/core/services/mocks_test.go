package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/omnera-dev/schematools/internal/adapters/driven/storage/memory"
	"github.com/omnera-dev/schematools/internal/core/domain"
)

// fixedClock returns a constant time and records requested sleeps.
type fixedClock struct {
	now      time.Time
	slept    []time.Duration
	sleepErr error
}

func (c *fixedClock) Now() time.Time { return c.now }

func (c *fixedClock) Sleep(ctx context.Context, d time.Duration) error {
	c.slept = append(c.slept, d)
	if c.sleepErr != nil {
		return c.sleepErr
	}
	return ctx.Err()
}

// mockProcessManager serves canned listings, one per Find call.
// Once the listings run out the last one is repeated.
type mockProcessManager struct {
	mu         sync.Mutex
	listings   [][]domain.Process
	findErr    error
	killErrs   map[int]error
	findCalls  int
	terminated []int
}

func (m *mockProcessManager) Find(_ context.Context, _ string) ([]domain.Process, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.findCalls++
	if m.findErr != nil {
		return nil, m.findErr
	}
	if len(m.listings) == 0 {
		return nil, nil
	}
	idx := m.findCalls - 1
	if idx >= len(m.listings) {
		idx = len(m.listings) - 1
	}
	return m.listings[idx], nil
}

func (m *mockProcessManager) Terminate(_ context.Context, pid int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.killErrs[pid]; err != nil {
		return err
	}
	m.terminated = append(m.terminated, pid)
	return nil
}

var errDiskFull = errors.New("disk full")

// failingFileStore wraps the memory store and fails writes to chosen paths.
type failingFileStore struct {
	*memory.FileStore
	failWrites map[string]bool
}

func (s *failingFileStore) WriteFile(ctx context.Context, name string, data []byte) error {
	if s.failWrites[name] {
		return errDiskFull
	}
	return s.FileStore.WriteFile(ctx, name, data)
}
