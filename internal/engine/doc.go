// Package engine orchestrates multi-file scans for Plucky. It traverses
// target files, runs the extraction program over each, and returns matches
// in walk order. This package is internal; external consumers should use the
// stable facade in pkg/core.
package engine
