package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/omnera-dev/schematools/internal/core/domain"
	"github.com/omnera-dev/schematools/internal/core/ports/driven"
	"github.com/omnera-dev/schematools/internal/core/ports/driving"
	"github.com/omnera-dev/schematools/internal/logger"
)

// Ensure ProcessReaper implements the interface.
var _ driving.ProcessReaper = (*ProcessReaper)(nil)

// ProcessReaper kills leftover processes matching a command-line pattern.
type ProcessReaper struct {
	processes driven.ProcessManager
	clock     driven.Clock
	settle    time.Duration
}

// NewProcessReaper creates a reaper that waits settle before re-checking.
func NewProcessReaper(processes driven.ProcessManager, clock driven.Clock, settle time.Duration) *ProcessReaper {
	return &ProcessReaper{
		processes: processes,
		clock:     clock,
		settle:    settle,
	}
}

// Reap finds, kills and re-checks matching processes.
// Survivors are reported, not returned as an error.
func (r *ProcessReaper) Reap(ctx context.Context, pattern string) (*domain.ReapReport, error) {
	logger.Section("Process Reaper")
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty process pattern", domain.ErrInvalidInput)
	}

	report := &domain.ReapReport{Pattern: pattern}
	report.Found = r.find(ctx, pattern)
	if report.NothingFound() {
		logger.Debug("No processes match %q", pattern)
		return report, nil
	}

	for _, p := range report.Found {
		logger.Debug("Killing %d: %s", p.PID, p.Command)
		if err := r.processes.Terminate(ctx, p.PID); err != nil {
			logger.Warn("kill %d: %v", p.PID, err)
			report.Failures = append(report.Failures, domain.KillFailure{Process: p, Err: err})
			continue
		}
		report.Killed = append(report.Killed, p)
	}

	if err := r.clock.Sleep(ctx, r.settle); err != nil {
		return report, err
	}

	survivors := make(map[int]bool)
	for _, p := range r.find(ctx, pattern) {
		survivors[p.PID] = true
	}
	for _, p := range report.Found {
		if survivors[p.PID] {
			report.Survivors = append(report.Survivors, p)
		}
	}
	if !report.Clean() {
		logger.Warn("%d process(es) survived termination", len(report.Survivors))
	}
	return report, nil
}

// find lists matching processes. Query failures count as zero matches.
func (r *ProcessReaper) find(ctx context.Context, pattern string) []domain.Process {
	procs, err := r.processes.Find(ctx, pattern)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Debug("Process query failed, assuming none: %v", err)
		}
		return nil
	}
	return procs
}
