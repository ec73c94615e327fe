package driven

import "context"

// FileStore reads and writes schema and license files.
// Paths are passed through as given; relative paths resolve against the
// store's working directory.
type FileStore interface {
	// List returns the files in dir whose base name matches pattern,
	// sorted by name. Subdirectories are not descended into.
	List(ctx context.Context, dir, pattern string) ([]string, error)

	// ReadFile returns the full content of a file.
	// Returns an error wrapping domain.ErrNotFound if the file does not exist.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile replaces the content of a file.
	WriteFile(ctx context.Context, path string, data []byte) error

	// Join builds a path from elements using the store's separator.
	Join(elem ...string) string
}
