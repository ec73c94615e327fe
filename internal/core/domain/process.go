package domain

import "time"

// DefaultReapPattern matches orphaned test-runner processes.
const DefaultReapPattern = "bun test"

// DefaultSettleDelay is how long the reaper waits before re-checking.
const DefaultSettleDelay = time.Second

// Process is an OS process matched by command line.
type Process struct {
	PID     int
	Command string
}

// KillFailure records a process that could not be signalled.
type KillFailure struct {
	Process Process
	Err     error
}

// ReapReport summarises a reaper run.
type ReapReport struct {
	Pattern   string
	Found     []Process
	Killed    []Process
	Failures  []KillFailure
	Survivors []Process
}

// NothingFound reports whether no process matched the pattern.
func (r *ReapReport) NothingFound() bool {
	return len(r.Found) == 0
}

// Clean reports whether every matched process is gone.
func (r *ReapReport) Clean() bool {
	return len(r.Survivors) == 0
}
