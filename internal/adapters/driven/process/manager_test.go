package process

import (
	"context"
	"errors"
	"os"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/omnera-dev/schematools/internal/core/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeRunner records invocations and returns canned output.
type fakeRunner struct {
	calls  [][]string
	output []byte
	err    error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.output, f.err
}

func TestParseListing(t *testing.T) {
	out := []byte(`
  PID COMMAND
    1 /sbin/init
  412 bun test --watch tests/unit
 9001   node   server.js
abc not a pid
   -4 negative
\r
`)

	got := ParseListing(out)

	assert.Equal(t, []domain.Process{
		{PID: 1, Command: "/sbin/init"},
		{PID: 412, Command: "bun test --watch tests/unit"},
		{PID: 9001, Command: "node   server.js"},
	}, got)
}

func TestParseListing_WindowsLineEndings(t *testing.T) {
	got := ParseListing([]byte("4 System\r\n5120 C:\\bun.exe test\r\n"))

	assert.Equal(t, []domain.Process{
		{PID: 4, Command: "System"},
		{PID: 5120, Command: "C:\\bun.exe test"},
	}, got)
}

func TestManager_Find_FiltersByPattern(t *testing.T) {
	runner := &fakeRunner{output: []byte("10 bun test a\n11 vim notes\n12 bash -c bun test b\n")}
	m := NewWithRunner(runner, POSIX)

	got, err := m.Find(context.Background(), "bun test")

	require.NoError(t, err)
	assert.Equal(t, []domain.Process{
		{PID: 10, Command: "bun test a"},
		{PID: 12, Command: "bash -c bun test b"},
	}, got)
	assert.Equal(t, [][]string{{"ps", "-eo", "pid=,args="}}, runner.calls)
}

func TestManager_Find_ExcludesSelfAndParent(t *testing.T) {
	self := strconv.Itoa(os.Getpid())
	parent := strconv.Itoa(os.Getppid())
	listing := strings.Join([]string{
		self + " schematools reap bun test",
		parent + " sh -c schematools reap 'bun test'",
		"77777 bun test",
	}, "\n")
	m := NewWithRunner(&fakeRunner{output: []byte(listing)}, POSIX)

	got, err := m.Find(context.Background(), "bun test")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 77777, got[0].PID)
}

func TestManager_Find_QueryFailure(t *testing.T) {
	m := NewWithRunner(&fakeRunner{err: errors.New("exec: ps not found")}, POSIX)

	got, err := m.Find(context.Background(), "bun test")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domain.ErrProcessQuery))
}

func TestManager_Terminate_Commands(t *testing.T) {
	tests := []struct {
		platform Platform
		want     []string
	}{
		{POSIX, []string{"kill", "-9", "42"}},
		{Windows, []string{"taskkill", "/F", "/PID", "42"}},
	}

	for _, tt := range tests {
		t.Run(tt.platform.Name, func(t *testing.T) {
			runner := &fakeRunner{}
			m := NewWithRunner(runner, tt.platform)

			require.NoError(t, m.Terminate(context.Background(), 42))
			assert.Equal(t, [][]string{tt.want}, runner.calls)
		})
	}
}

func TestManager_Terminate_Errors(t *testing.T) {
	runner := &fakeRunner{err: errors.New("no such process")}
	m := NewWithRunner(runner, POSIX)

	err := m.Terminate(context.Background(), 42)
	assert.ErrorContains(t, err, "terminate 42")

	err = m.Terminate(context.Background(), 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Len(t, runner.calls, 1, "invalid pid must not reach the runner")
}

func TestWindowsListCommand(t *testing.T) {
	assert.Equal(t, "powershell", Windows.List[0])
	assert.Contains(t, Windows.List[len(Windows.List)-1], "Win32_Process")
}

func TestCurrent(t *testing.T) {
	if runtime.GOOS == "windows" {
		assert.Equal(t, "windows", Current().Name)
	} else {
		assert.Equal(t, "posix", Current().Name)
	}
}

func TestExecRunner_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX echo")
	}
	out, err := ExecRunner{}.Run(context.Background(), "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))

	_, err = ExecRunner{}.Run(context.Background(), "schematools-no-such-binary")
	assert.Error(t, err)
}
