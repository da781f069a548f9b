// Package cache stores per-file scan results keyed by content hash so
// unchanged files are replayed instead of rescanned. The db also records the
// selection the results were produced under: a different selection
// invalidates everything.
package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/plucky/plucky/internal/types"
)

// Entry holds the cached outcome for one file.
type Entry struct {
	Hash    string        `json:"hash"`
	Matches []types.Match `json:"matches"`
}

type DB struct {
	// Selection is a fingerprint of the compiled selection (category names
	// plus custom pattern text).
	Selection string `json:"selection"`
	// Path relative to scan root -> cached entry.
	Entries map[string]Entry `json:"entries"`
}

func defaultPath(root string) string {
	// Prefer storing under .git to avoid accidental commits
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "pluckycache.json")
	}
	return filepath.Join(root, ".pluckycache.json")
}

// Load reads the cache db for root. A missing or unreadable db comes back
// empty, never as a fatal error for the scan.
func Load(root, selection string) (DB, error) {
	empty := DB{Selection: selection, Entries: map[string]Entry{}}
	b, err := os.ReadFile(defaultPath(root))
	if err != nil {
		return empty, err
	}
	var db DB
	if err := json.Unmarshal(b, &db); err != nil {
		return empty, err
	}
	if db.Selection != selection || db.Entries == nil {
		return empty, nil
	}
	return db, nil
}

func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(defaultPath(root), b, 0644)
}
