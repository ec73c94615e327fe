package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/omnera-dev/schematools/internal/core/domain"
	"github.com/omnera-dev/schematools/internal/core/ports/driven"
)

// Ensure FileStore implements the interface.
var _ driven.FileStore = (*FileStore)(nil)

// FileStore reads and writes files on the local filesystem.
type FileStore struct {
	perm os.FileMode
}

// NewFileStore creates a filesystem store. New files get mode 0644.
func NewFileStore() *FileStore {
	return &FileStore{perm: 0o644}
}

// List returns regular files directly inside dir whose name matches pattern.
func (s *FileStore) List(ctx context.Context, dir, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", dir, domain.ErrNotFound)
		}
		return nil, err
	}

	var result []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if ok, _ := filepath.Match(pattern, entry.Name()); ok {
			result = append(result, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(result)
	return result, nil
}

// ReadFile returns the content of path.
func (s *FileStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return nil, err
	}
	return data, nil
}

// WriteFile atomically replaces the content of path.
// An existing file keeps its permission bits.
func (s *FileStore) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	perm := s.perm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	// WriteFile honours umask; restore the original mode explicitly.
	if err := os.Chmod(tmp, perm); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Join joins path elements with the OS separator.
func (s *FileStore) Join(elem ...string) string {
	return filepath.Join(elem...)
}
