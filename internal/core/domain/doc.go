// Package domain defines the core entities for minigrep.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - MatchedLine: A line of input that satisfied the query, with its 1-based number
//   - SearchConfig: The compiled options the matcher and renderer run with
//   - ColorMode: How diagnostics are coloured
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
