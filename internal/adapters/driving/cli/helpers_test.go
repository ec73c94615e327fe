package cli

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/omnera-dev/schematools/internal/adapters/driven/catalog"
	"github.com/omnera-dev/schematools/internal/adapters/driven/codec/jsondoc"
	"github.com/omnera-dev/schematools/internal/adapters/driven/storage/memory"
	"github.com/omnera-dev/schematools/internal/core/domain"
	"github.com/omnera-dev/schematools/internal/core/services"
	"github.com/omnera-dev/schematools/internal/logger"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func (c fixedClock) Sleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }

// fakeProcesses returns listing until Terminate has been called for every
// PID in it, then an empty listing.
type fakeProcesses struct {
	listing    []domain.Process
	immortal   map[int]bool
	terminated []int
}

func (f *fakeProcesses) Find(_ context.Context, _ string) ([]domain.Process, error) {
	var alive []domain.Process
	for _, p := range f.listing {
		if f.isAlive(p.PID) {
			alive = append(alive, p)
		}
	}
	return alive, nil
}

func (f *fakeProcesses) isAlive(pid int) bool {
	if f.immortal[pid] {
		return true
	}
	for _, t := range f.terminated {
		if t == pid {
			return false
		}
	}
	return true
}

func (f *fakeProcesses) Terminate(_ context.Context, pid int) error {
	f.terminated = append(f.terminated, pid)
	return nil
}

type testEnv struct {
	files  *memory.FileStore
	config *memory.ConfigStore
	procs  *fakeProcesses
}

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

// setupTest wires real services over in-memory adapters.
func setupTest(t *testing.T) *testEnv {
	t.Helper()

	previous := Services{
		Settings: settingsService,
		Refs:     refRewriter,
		Paths:    pathFixer,
		Titles:   titleInjector,
		Reaper:   processReaper,
		License:  licenseStamper,
		Fields:   fieldSplitter,
	}
	t.Cleanup(func() { setServices(&previous) })

	env := &testEnv{
		files:  memory.NewFileStore(),
		config: memory.NewConfigStore(),
		procs:  &fakeProcesses{},
	}
	codec := jsondoc.New()
	fields, err := catalog.New()
	require.NoError(t, err)
	clock := fixedClock{now: testNow}

	setServices(&Services{
		Settings: services.NewSettingsService(env.config),
		Refs:     services.NewRefRewriter(env.files, codec),
		Paths:    services.NewPathFixer(env.files),
		Titles:   services.NewTitleInjector(env.files, codec),
		Reaper:   services.NewProcessReaper(env.procs, clock, 0),
		License:  services.NewLicenseStamper(env.files, clock, domain.DefaultLicenseProduct, domain.DefaultChangeYears),
		Fields:   services.NewFieldSplitter(env.files, codec, fields),
	})
	return env
}

// runCommand executes rootCmd with args and returns stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		verbose = false
		configPath = ""
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}
