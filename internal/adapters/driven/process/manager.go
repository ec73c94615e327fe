package process

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/omnera-dev/schematools/internal/core/domain"
	"github.com/omnera-dev/schematools/internal/core/ports/driven"
)

// Ensure Manager implements the interface.
var _ driven.ProcessManager = (*Manager)(nil)

// Platform holds the commands used to list and kill processes.
// The list command must print one "PID COMMAND-LINE" pair per line.
type Platform struct {
	Name    string
	List    []string
	KillCmd func(pid int) []string
}

// POSIX lists with ps and kills with SIGKILL.
var POSIX = Platform{
	Name: "posix",
	List: []string{"ps", "-eo", "pid=,args="},
	KillCmd: func(pid int) []string {
		return []string{"kill", "-9", strconv.Itoa(pid)}
	},
}

// Windows lists through CIM and kills with taskkill.
var Windows = Platform{
	Name: "windows",
	List: []string{
		"powershell", "-NoProfile", "-NonInteractive", "-Command",
		`Get-CimInstance Win32_Process | ForEach-Object { "{0} {1}" -f $_.ProcessId, $_.CommandLine }`,
	},
	KillCmd: func(pid int) []string {
		return []string{"taskkill", "/F", "/PID", strconv.Itoa(pid)}
	},
}

// Manager finds and kills processes by command-line substring.
type Manager struct {
	runner   Runner
	platform Platform
	exclude  map[int]bool
}

// New creates a manager for the current operating system.
func New() *Manager {
	return NewWithRunner(ExecRunner{}, Current())
}

// NewWithRunner creates a manager using runner and platform. The current
// process and its parent are never reported.
func NewWithRunner(runner Runner, platform Platform) *Manager {
	return &Manager{
		runner:   runner,
		platform: platform,
		exclude: map[int]bool{
			os.Getpid():  true,
			os.Getppid(): true,
		},
	}
}

// Find returns processes whose command line contains pattern.
func (m *Manager) Find(ctx context.Context, pattern string) ([]domain.Process, error) {
	out, err := m.runner.Run(ctx, m.platform.List[0], m.platform.List[1:]...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProcessQuery, err)
	}

	var matches []domain.Process
	for _, p := range ParseListing(out) {
		if m.exclude[p.PID] || !strings.Contains(p.Command, pattern) {
			continue
		}
		matches = append(matches, p)
	}
	return matches, nil
}

// Terminate forcefully kills pid.
func (m *Manager) Terminate(ctx context.Context, pid int) error {
	if pid <= 0 {
		return fmt.Errorf("%w: pid %d", domain.ErrInvalidInput, pid)
	}
	argv := m.platform.KillCmd(pid)
	if _, err := m.runner.Run(ctx, argv[0], argv[1:]...); err != nil {
		return fmt.Errorf("terminate %d: %w", pid, err)
	}
	return nil
}

// ParseListing parses "PID COMMAND-LINE" lines. Lines without a numeric
// PID, such as headers, are skipped.
func ParseListing(out []byte) []domain.Process {
	var procs []domain.Process
	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		pidField, command, _ := strings.Cut(line, " ")
		pid, err := strconv.Atoi(pidField)
		if err != nil || pid <= 0 {
			continue
		}
		procs = append(procs, domain.Process{PID: pid, Command: strings.TrimSpace(command)})
	}
	return procs
}
