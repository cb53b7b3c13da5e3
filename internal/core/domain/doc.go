// Package domain defines the core entities for apikit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - MatchResult: The outcome of scoring a query against candidate texts
//   - DebounceBuffer: Pending debounced arguments keyed by name
//   - Item: A searchable request, collection or workspace
//   - Header: A name/value pair attached to a request
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
