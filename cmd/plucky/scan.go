package plucky

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/plucky/plucky/internal/config"
	"github.com/plucky/plucky/internal/engine"
	"github.com/plucky/plucky/internal/extract"
	"github.com/plucky/plucky/internal/registry"
	"github.com/plucky/plucky/internal/report"
	"github.com/plucky/plucky/internal/tui"
	"github.com/plucky/plucky/internal/types"
	"github.com/plucky/plucky/internal/update"
)

var (
	flagCategories  string
	flagPattern     string
	flagInclude     string
	flagExclude     string
	flagMaxBytes    int64
	flagOffsets     bool
	flagInteractive bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Extract pattern matches from files or stdin",
		Long:  "Scan the given files or directories (default: current directory) and print every occurrence of the selected categories. Use '-' to read from stdin.",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagCategories, "categories", "c", "", "comma-separated category names (empty = all)")
	cmd.Flags().StringVarP(&flagPattern, "pattern", "e", "", "ad-hoc RE2 pattern reported as category \"custom\"")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().BoolVar(&flagOffsets, "offsets", false, "print byte offsets for each match")
	cmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "browse matches in an interactive TUI")
}

func runScan(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if abs, err := filepath.Abs(args[0]); err == nil && args[0] != "-" {
		if c, err := config.LoadLocal(abs); err == nil {
			lcfg = c
		}
	}

	categories := pickString(flagCategories, lcfg.Categories, gcfg.Categories)
	pattern := pickString(flagPattern, lcfg.Pattern, gcfg.Pattern)
	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}
	offsets := pickBool(flagOffsets, lcfg.Offsets, gcfg.Offsets)

	if !flagJSON && !flagNoUpdateCheck {
		if latest, newer, _ := update.Check(version, false); newer && latest != "" {
			fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'plucky update' to upgrade\n", latest)
		}
	}

	if len(args) == 1 && args[0] == "-" {
		return scanStdin(categories, pattern, noColor, offsets)
	}

	scan := func() ([]types.Match, engine.Result, error) {
		var all []types.Match
		var total engine.Result
		for _, root := range args {
			abs, err := filepath.Abs(root)
			if err != nil {
				return nil, total, err
			}
			cfg := engine.Config{
				Root:            abs,
				IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
				ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
				MaxBytes:        pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
				Threads:         pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
				Categories:      categories,
				Pattern:         pattern,
				NoCache:         pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
				DefaultExcludes: flagDefaultExcludes,
			}
			res, err := engine.ScanWithStats(cfg)
			if err != nil {
				return nil, total, fmt.Errorf("scan error: %w", err)
			}
			all = append(all, res.Matches...)
			total.FilesScanned += res.FilesScanned
			total.Duration += res.Duration
		}
		return all, total, nil
	}

	matches, stats, err := scan()
	if err != nil {
		return err
	}
	if matches == nil {
		matches = []types.Match{}
	} // no `null` in JSON

	if flagInteractive {
		return tui.Run(matches, func() ([]types.Match, error) {
			fresh, _, err := scan()
			return fresh, err
		})
	}

	opts := report.PrintOptions{
		Paths:        true,
		Offsets:      offsets,
		NoColor:      noColor,
		Duration:     stats.Duration,
		FilesScanned: stats.FilesScanned,
	}

	switch {
	case flagJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	case flagTable:
		report.PrintTable(os.Stdout, matches, opts)
	default:
		report.PrintPlain(os.Stdout, matches, opts)
	}
	return nil
}

// scanStdin extracts matches from standard input. Plain output streams each
// match as soon as it is found.
func scanStdin(categories, pattern string, noColor, offsets bool) error {
	prog, err := extract.Compile(registry.Default(), splitNames(categories), pattern)
	if err != nil {
		return err
	}

	sc, err := extract.NewScanner(prog, os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	opts := report.PrintOptions{Offsets: offsets, NoColor: noColor}

	if flagJSON || flagTable || flagInteractive {
		start := time.Now()
		matches := sc.All()
		if matches == nil {
			matches = []types.Match{}
		}
		switch {
		case flagInteractive:
			return tui.Run(matches, nil)
		case flagJSON:
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(matches)
		default:
			opts.Duration = time.Since(start)
			report.PrintTable(os.Stdout, matches, opts)
			return nil
		}
	}

	for {
		m, ok := sc.Next()
		if !ok {
			break
		}
		report.PrintOne(os.Stdout, m, opts)
	}
	return nil
}
