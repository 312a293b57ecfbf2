// Package kernel provides the shared domain primitives of the tours system.
//
// The package includes:
//   - UUID: a value object for entity identifiers with validation and comparison
//
// Kernel types are immutable and safe for concurrent use.
package kernel
