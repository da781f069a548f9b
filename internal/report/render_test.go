package report

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/plucky/plucky/internal/types"
)

var sample = []types.Match{
	{Path: "a.txt", Line: 3, Start: 10, End: 18, Text: "10.0.0.5", Category: "ipv4-address"},
	{Path: "b.txt", Line: 1, Start: 0, End: 15, Text: "ops@example.com", Category: "email-address"},
}

func TestPrintPlainDefault(t *testing.T) {
	var buf bytes.Buffer
	PrintPlain(&buf, sample, PrintOptions{})
	want := "10.0.0.5\nops@example.com\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestPrintPlainPaths(t *testing.T) {
	var buf bytes.Buffer
	PrintPlain(&buf, sample[:1], PrintOptions{Paths: true})
	want := "a.txt:3: 10.0.0.5\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestPrintPlainOffsets(t *testing.T) {
	var buf bytes.Buffer
	PrintPlain(&buf, sample[:1], PrintOptions{Offsets: true, NoColor: true})
	want := "10-18:ipv4-address: 10.0.0.5\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestPrintPlainPathsAndOffsets(t *testing.T) {
	var buf bytes.Buffer
	PrintPlain(&buf, sample[:1], PrintOptions{Paths: true, Offsets: true, NoColor: true})
	want := "a.txt:3:10-18:ipv4-address: 10.0.0.5\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestColorEscapes(t *testing.T) {
	var buf bytes.Buffer
	PrintOne(&buf, sample[0], PrintOptions{Offsets: true})
	if !strings.Contains(buf.String(), "\x1b[36m") {
		t.Errorf("no color escape in %q", buf.String())
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintPlain(&buf, sample, PrintOptions{FilesScanned: 7})
	out := buf.String()
	if !strings.Contains(out, "Matches: 2") || !strings.Contains(out, "Files scanned: 7") {
		t.Errorf("summary missing from %q", out)
	}

	buf.Reset()
	PrintPlain(&buf, sample, PrintOptions{})
	if strings.Contains(buf.String(), "Matches:") {
		t.Error("summary printed without stats")
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sample, PrintOptions{})
	out := buf.String()
	for _, want := range []string{"ipv4-address", "a.txt:3", "ops@example.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestClip(t *testing.T) {
	if got := clip("short", 80); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := clip("line1\nline2", 80); got != "line1…" {
		t.Errorf("got %q", got)
	}
	long := strings.Repeat("a", 100)
	if got := clip(long, 80); got != long[:80]+"…" {
		t.Errorf("got %d chars", len(got))
	}
}

func TestClipKeepsRunesWhole(t *testing.T) {
	// 30 three-byte runes; byte 80 falls inside the 27th rune
	long := strings.Repeat("→", 30)
	got := clip(long, 80)
	if !utf8.ValidString(got) {
		t.Fatalf("clip split a rune: %q", got)
	}
	if got != strings.Repeat("→", 26)+"…" {
		t.Errorf("got %q", got)
	}
}
