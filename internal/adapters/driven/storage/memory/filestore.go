package memory

import (
	"context"
	"fmt"
	"path"
	"sort"
	"sync"

	"github.com/omnera-dev/schematools/internal/core/domain"
	"github.com/omnera-dev/schematools/internal/core/ports/driven"
)

// Ensure FileStore implements the interface.
var _ driven.FileStore = (*FileStore)(nil)

// FileStore is an in-memory implementation of driven.FileStore for testing.
// Paths are slash-separated and cleaned before use.
type FileStore struct {
	mu     sync.RWMutex
	files  map[string][]byte
	writes map[string]int
}

// NewFileStore creates a new in-memory file store.
func NewFileStore() *FileStore {
	return &FileStore{
		files:  make(map[string][]byte),
		writes: make(map[string]int),
	}
}

// Put stores a file without counting it as a write.
func (s *FileStore) Put(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path.Clean(name)] = append([]byte(nil), data...)
}

// Writes returns how many times WriteFile stored name.
func (s *FileStore) Writes(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes[path.Clean(name)]
}

// List returns the files directly inside dir matching pattern.
func (s *FileStore) List(_ context.Context, dir, pattern string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dir = path.Clean(dir)
	var result []string
	for name := range s.files {
		if path.Dir(name) != dir {
			continue
		}
		ok, err := path.Match(pattern, path.Base(name))
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result, nil
}

// ReadFile returns a copy of the stored content.
func (s *FileStore) ReadFile(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.files[path.Clean(name)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrNotFound)
	}
	return append([]byte(nil), data...), nil
}

// WriteFile stores a copy of data.
func (s *FileStore) WriteFile(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = path.Clean(name)
	s.files[name] = append([]byte(nil), data...)
	s.writes[name]++
	return nil
}

// Join joins path elements with slashes.
func (s *FileStore) Join(elem ...string) string {
	return path.Join(elem...)
}
