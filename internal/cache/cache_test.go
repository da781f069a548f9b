package cache

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/plucky/plucky/internal/types"
)

func sampleDB(selection string) DB {
	return DB{
		Selection: selection,
		Entries: map[string]Entry{
			"a.txt": {
				Hash: "00000000deadbeef",
				Matches: []types.Match{
					{Path: "a.txt", Line: 1, Start: 10, End: 18, Text: "10.0.0.5", Category: "ipv4-address"},
				},
			},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	db := sampleDB("ipv4-address|")
	if err := Save(root, db); err != nil {
		t.Fatal(err)
	}

	got, err := Load(root, "ipv4-address|")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, db) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", got, db)
	}
}

func TestLoadSelectionMismatch(t *testing.T) {
	root := t.TempDir()
	if err := Save(root, sampleDB("ipv4-address|")); err != nil {
		t.Fatal(err)
	}

	got, err := Load(root, "email-address|")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Entries) != 0 {
		t.Fatalf("stale entries survived a selection change: %+v", got)
	}
	if got.Selection != "email-address|" {
		t.Errorf("selection = %q", got.Selection)
	}
}

func TestLoadMissing(t *testing.T) {
	got, err := Load(t.TempDir(), "x|")
	if err == nil {
		t.Fatal("expected error for missing db")
	}
	if got.Entries == nil {
		t.Fatal("missing db must still come back usable")
	}
}

func TestLoadCorrupt(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".pluckycache.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(root, "x|")
	if err == nil {
		t.Fatal("expected error for corrupt db")
	}
	if got.Entries == nil || len(got.Entries) != 0 {
		t.Fatalf("corrupt db must come back empty: %+v", got)
	}
}

func TestSavePrefersGitDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := Save(root, sampleDB("x|")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(root, ".git", "pluckycache.json")); err != nil {
		t.Fatalf("db not under .git: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, ".pluckycache.json")); err == nil {
		t.Fatal("db also written at root")
	}
}
