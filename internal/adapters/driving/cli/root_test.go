package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "schematools", rootCmd.Use)
}

func TestRootCmd_HasCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{
		"fix-refs", "fix-paths", "add-titles", "reap", "stamp-license", "split-fields", "settings", "version",
	} {
		assert.True(t, names[want], want)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	v := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, v)
	assert.Equal(t, "v", v.Shorthand)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	_, _, err := runCommand(t, "does-not-exist")
	assert.Error(t, err)
}

func TestRootCmd_VerboseLogsToStderr(t *testing.T) {
	env := setupTest(t)
	env.files.Put("dir/a.schema.json", []byte(`{}`))

	_, stderr, err := runCommand(t, "fix-refs", "dir", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "=== Reference Rewrite ===")
}

func TestExecute_UsesFactory(t *testing.T) {
	setupTest(t)
	defer func() {
		serviceFactory = nil
		rootCmd.SetArgs(nil)
		configPath = ""
	}()

	var gotPath string
	rootCmd.SetArgs([]string{"--config", "custom.toml", "version"})
	err := Execute(context.Background(), func(path string) (*Services, error) {
		gotPath = path
		return &Services{}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "custom.toml", gotPath)
}

func TestExecute_FactoryError(t *testing.T) {
	setupTest(t)
	defer func() {
		serviceFactory = nil
		rootCmd.SetArgs(nil)
	}()

	boom := errors.New("bad config")
	rootCmd.SetArgs([]string{"version"})
	err := Execute(context.Background(), func(string) (*Services, error) {
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("")
	assert.Equal(t, original, version)
	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}
