package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"github.com/plucky/plucky/internal/types"
)

type PrintOptions struct {
	// Paths prefixes each line with path:line:, grep style. Enabled for
	// multi-file scans, off for stdin.
	Paths        bool
	Offsets      bool
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

// PrintPlain writes one match per line, matched text verbatim.
func PrintPlain(w io.Writer, matches []types.Match, opts PrintOptions) {
	for _, m := range matches {
		PrintOne(w, m, opts)
	}
	printSummary(w, len(matches), opts)
}

// PrintOne writes a single match in plain format. Used for streamed output
// where matches are printed as they are found.
func PrintOne(w io.Writer, m types.Match, opts PrintOptions) {
	switch {
	case opts.Paths && opts.Offsets:
		fmt.Fprintf(w, "%s:%d:%d-%d:%s: %s\n", m.Path, m.Line, m.Start, m.End, colorCategory(m.Category, opts.NoColor), m.Text)
	case opts.Paths:
		fmt.Fprintf(w, "%s:%d: %s\n", m.Path, m.Line, m.Text)
	case opts.Offsets:
		fmt.Fprintf(w, "%d-%d:%s: %s\n", m.Start, m.End, colorCategory(m.Category, opts.NoColor), m.Text)
	default:
		fmt.Fprintln(w, m.Text)
	}
}

// PrintTable renders matches in a bordered table.
func PrintTable(w io.Writer, matches []types.Match, opts PrintOptions) {
	table := tablewriter.NewTable(w)
	table.Header([]string{"CATEGORY", "LOCATION", "TEXT"})
	for _, m := range matches {
		loc := strconv.Itoa(m.Line)
		if m.Path != "" {
			loc = m.Path + ":" + loc
		}
		_ = table.Append([]string{m.Category, loc, clip(m.Text, 80)})
	}
	_ = table.Render()
	printSummary(w, len(matches), opts)
}

func printSummary(w io.Writer, n int, opts PrintOptions) {
	if opts.Duration <= 0 && opts.FilesScanned <= 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Matches: %d\n", n)
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}

// clip bounds multi-line or very long matched text (key blocks) for tabular
// display; plain and JSON output keep the text verbatim.
func clip(s string, max int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + "…"
	}
	if len(s) <= max {
		return s
	}
	// back up to a rune boundary before cutting
	end := max
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}
	return s[:end] + "…"
}

func colorCategory(c string, noColor bool) string {
	if noColor {
		return c
	}
	return "\x1b[36m" + c + "\x1b[0m" // cyan
}
