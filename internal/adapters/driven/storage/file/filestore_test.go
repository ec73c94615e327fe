package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnera-dev/schematools/internal/core/domain"
)

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFileStore_List(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, filepath.Join(dir, "b.schema.json"), "{}")
	writeFixture(t, filepath.Join(dir, "a.schema.json"), "{}")
	writeFixture(t, filepath.Join(dir, "notes.md"), "")
	writeFixture(t, filepath.Join(dir, "nested", "c.schema.json"), "{}")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "d.schema.json"), 0o755))

	got, err := NewFileStore().List(context.Background(), dir, "*.schema.json")

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.schema.json"),
		filepath.Join(dir, "b.schema.json"),
	}, got)
}

func TestFileStore_List_MissingDir(t *testing.T) {
	_, err := NewFileStore().List(context.Background(), filepath.Join(t.TempDir(), "nope"), "*.json")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestFileStore_List_BadPattern(t *testing.T) {
	_, err := NewFileStore().List(context.Background(), t.TempDir(), "[")
	assert.Error(t, err)
}

func TestFileStore_ReadFile_NotFound(t *testing.T) {
	_, err := NewFileStore().ReadFile(context.Background(), filepath.Join(t.TempDir(), "LICENSE.md"))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestFileStore_WriteFile_ReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.schema.json")
	writeFixture(t, path, "old")

	store := NewFileStore()
	require.NoError(t, store.WriteFile(context.Background(), path, []byte("new")))

	data, err := store.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestFileStore_WriteFile_KeepsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	path := filepath.Join(t.TempDir(), "LICENSE.md")
	writeFixture(t, path, "old")
	require.NoError(t, os.Chmod(path, 0o600))

	require.NoError(t, NewFileStore().WriteFile(context.Background(), path, []byte("new")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_WriteFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "a.json")
	assert.Error(t, NewFileStore().WriteFile(context.Background(), path, []byte("x")))
}

func TestFileStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewFileStore()
	_, err := store.ReadFile(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.WriteFile(ctx, "x", nil), context.Canceled)
}
