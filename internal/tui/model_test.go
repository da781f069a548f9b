package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/plucky/plucky/internal/types"
)

func TestFirstLine(t *testing.T) {
	if got := firstLine("one line"); got != "one line" {
		t.Errorf("got %q", got)
	}
	if got := firstLine("first\nsecond"); got != "first ..." {
		t.Errorf("got %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{5 * time.Second, "5s"},
		{3 * time.Minute, "3m"},
		{2 * time.Hour, "2h"},
		{50 * time.Hour, "2d"},
	}
	for _, c := range cases {
		if got := formatDuration(c.d); got != c.want {
			t.Errorf("formatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestMatchRows(t *testing.T) {
	rows := matchRows([]types.Match{
		{Category: "ipv4-address", Path: "a.txt", Line: 3, Text: "10.0.0.5"},
	})
	if len(rows) != 1 {
		t.Fatalf("rows = %d", len(rows))
	}
	r := rows[0]
	if r[0] != "ipv4-address" || r[1] != "a.txt" || r[2] != "3" || r[3] != "10.0.0.5" {
		t.Errorf("got %v", r)
	}
}

func TestMatchesToCSV(t *testing.T) {
	b, err := matchesToCSV([]types.Match{
		{Category: "string", Path: "a.txt", Line: 1, Start: 4, End: 9, Text: `"x,y"`},
	})
	if err != nil {
		t.Fatal(err)
	}
	out := string(b)
	if !strings.HasPrefix(out, "Category,Path,Line,Start,End,Text\n") {
		t.Errorf("header missing: %q", out)
	}
	// comma inside matched text must stay quoted
	if !strings.Contains(out, `"""x,y"""`) {
		t.Errorf("csv quoting wrong: %q", out)
	}
}

func TestApplyFilters(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	m := NewModel([]types.Match{
		{Category: "ipv4-address", Path: "net.txt", Text: "10.0.0.5"},
		{Category: "email-address", Path: "mail.txt", Text: "ops@example.com"},
	}, nil)

	m.searchQuery = "mail"
	m.applyFilters()
	if len(m.filteredMatches) != 1 || m.filteredMatches[0].Category != "email-address" {
		t.Fatalf("got %v", m.filteredMatches)
	}

	// clearing the query restores the nil sentinel; display falls back
	// to the full match list
	m.searchQuery = ""
	m.applyFilters()
	if m.filteredMatches != nil {
		t.Fatalf("filter sentinel not cleared: %v", m.filteredMatches)
	}
	if got := m.getDisplayMatches(); len(got) != 2 {
		t.Fatalf("got %d display matches, want 2", len(got))
	}
}
