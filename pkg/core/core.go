package core

import (
	"github.com/plucky/plucky/internal/engine"
	"github.com/plucky/plucky/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type Match = types.Match
type Result = engine.Result

// Scan is the stable entrypoint for other programs.
func Scan(cfg Config) ([]Match, error) {
	return engine.Scan(cfg)
}

// ScanWithStats runs a scan and reports file and timing statistics along
// with the matches.
func ScanWithStats(cfg Config) (Result, error) {
	return engine.ScanWithStats(cfg)
}

// Categories returns the built-in category names in registration order.
// This is exposed for convenience to avoid importing internals directly.
func Categories() []string { return engine.Categories() }
