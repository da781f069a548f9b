// Package registry holds the named extraction categories. The default
// registry is built once per process from the combinator definitions in the
// per-family files (numbers, network, identity, hashes, credentials, keys,
// paths, quoted strings) and is immutable afterwards, so it is safe to share
// across concurrent scans without locking.
package registry
