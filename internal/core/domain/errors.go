package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested file or entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrVersionRequired indicates the license stamper was invoked without a version.
	ErrVersionRequired = errors.New("version argument is required")

	// Document Errors.

	// ErrInvalidDocument indicates a schema file is not valid JSON.
	ErrInvalidDocument = errors.New("invalid JSON document")

	// ErrNotObject indicates a schema document's root is not a JSON object.
	ErrNotObject = errors.New("document root is not an object")

	// ErrPathNotFound indicates a key path is missing from a document.
	ErrPathNotFound = errors.New("path not found in document")

	// Process Errors.

	// ErrProcessQuery indicates the OS process table could not be queried.
	// The reaper treats this as zero matching processes.
	ErrProcessQuery = errors.New("process query failed")

	// ErrUnsupportedPlatform indicates no process manager exists for this OS.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
