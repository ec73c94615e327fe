// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - FileStore: Schema and license file access
//   - DocumentCodec: Order-preserving JSON decode/encode
//   - ProcessManager: Platform-specific process listing and killing
//   - Clock: Wall-clock time and settle delays
//   - FieldCatalog: Specific field type definitions
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
