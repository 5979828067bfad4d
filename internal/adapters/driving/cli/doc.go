// Package cli provides the cobra command line interface for minigrep.
//
// The CLI is the only layer that reads process arguments and the
// environment. It compiles them into a domain.SearchConfig once, hands
// that to the search service and writes the rendered result to stdout.
// Every diagnostic goes to stderr through the logger package.
package cli
