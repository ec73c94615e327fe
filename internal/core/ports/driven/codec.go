package driven

import "github.com/omnera-dev/schematools/internal/core/domain"

// DocumentCodec converts between raw JSON bytes and document trees.
type DocumentCodec interface {
	// Decode parses data into a document tree, keeping object member order.
	// Returns an error wrapping domain.ErrInvalidDocument on malformed input.
	Decode(data []byte) (domain.Value, error)

	// Encode serialises a document tree with two-space indentation and a
	// trailing newline.
	Encode(v domain.Value) ([]byte, error)
}
