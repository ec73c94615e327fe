// Package domain defines the core entities for schematools.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Object / Value: an order-preserving JSON document tree
//   - RefRule / PathRewrite: reference rewriting rules
//   - TitleTable: the static path to title mapping
//   - LicenseStamp: values written into the BSL license file
//   - Process: an OS process matched by the reaper
//   - FieldType: a specific table field schema
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
