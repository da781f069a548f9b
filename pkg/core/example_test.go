package core_test

import (
	"fmt"
	"os"

	"github.com/plucky/plucky/pkg/core"
)

// ExampleScan demonstrates how to perform a simple scan of a directory.
func ExampleScan() {
	// 1. Configure the scan
	cfg := core.Config{
		Root:         ".",           // Scan the current directory
		Categories:   "email-address,url",
		Threads:      4,             // Number of concurrent workers
		IncludeGlobs: "*.txt",       // Only scan text files (optional)
		MaxBytes:     1024 * 1024,   // Skip files larger than 1MB
	}

	// 2. Run the scan
	matches, err := core.Scan(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
		return
	}

	// 3. Process matches
	if len(matches) == 0 {
		fmt.Println("No matches found.")
	} else {
		fmt.Printf("Found %d matches.\n", len(matches))
		// Helper to write JSON output to stdout
		_ = core.MarshalMatches(os.Stdout, matches)
	}
}

// ExampleScanWithStats shows how to run a scan and retrieve execution statistics.
func ExampleScanWithStats() {
	cfg := core.Config{
		Root:    "testdata",
		NoCache: true,
	}

	// Run scan and get detailed result object
	result, err := core.ScanWithStats(cfg)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Scanned %d files in %s\n", result.FilesScanned, result.Duration)
	fmt.Printf("Found %d matches\n", len(result.Matches))
}
