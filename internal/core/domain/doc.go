// Package domain defines the core business entities for aidoc.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Project: A user-owned document made of ordered sections
//   - Section: A titled, independently refinable block of content
//   - Comment: A note attached to a section
//   - DocumentFormat: The binary format a project targets and exports to
//   - ClientSettings: Where the backend lives and how the client talks to it
//   - DocumentPreview: Text read back from an exported document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
