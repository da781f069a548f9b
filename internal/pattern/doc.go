// Package pattern implements the grammar nodes and combinators from which
// every extraction category is built. Patterns are immutable: combinators
// consume already-built nodes and return new ones, so the resulting graph is
// acyclic by construction. Each node renders to an RE2 source fragment and
// tracks the minimum number of bytes a match consumes, which lets the
// registry reject categories that could match empty text.
package pattern
