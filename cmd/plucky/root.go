package plucky

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plucky/plucky/internal/registry"
)

var (
	flagJSON            bool
	flagTable           bool
	flagThreads         int
	flagNoColor         bool
	flagNoCache         bool
	flagDefaultExcludes bool
	flagNoUpdateCheck   bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the plucky CLI.
var rootCmd = &cobra.Command{
	Use:           "plucky",
	Short:         "Pluck structured patterns out of text",
	Long:          "Plucky scans files, directories or stdin and extracts occurrences of named pattern categories: addresses, identifiers, hashes, credentials, keys, paths and more.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the plucky CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status: 1 for caller errors
// (bad category name, malformed custom pattern), 2 for execution errors.
func exitCode(err error) int {
	if errors.Is(err, registry.ErrUnknownPattern) || errors.Is(err, registry.ErrDuplicateName) {
		return 1
	}
	return 2
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output in table format with borders")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable incremental scan cache")
	rootCmd.PersistentFlags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list (node_modules, dist, images, etc.)")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
}
