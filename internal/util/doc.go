// Package util holds small stateless helpers shared by the CLI and adapters:
// header lookup, ID generation, size formatting, pluralisation, shallow map
// diffs and host environment queries.
//
// Nothing in internal/core depends on this package.
package util
