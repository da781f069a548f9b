package tui

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prefs holds browser preferences that persist across sessions.
type Prefs struct {
	// ContextLines is the number of lines shown around a match in the
	// detail pane.
	ContextLines int `yaml:"context_lines"`
	// Theme is the chroma style used for syntax highlighting.
	Theme string `yaml:"theme"`
}

// DefaultPrefs returns the default preferences.
func DefaultPrefs() Prefs {
	return Prefs{
		ContextLines: 3,
		Theme:        "monokai",
	}
}

// prefsPath returns the path to the preferences file.
func prefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "plucky", "tui.yml"), nil
}

// LoadPrefs loads preferences from disk, returning defaults if not found.
func LoadPrefs() Prefs {
	prefs := DefaultPrefs()

	path, err := prefsPath()
	if err != nil {
		return prefs
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return prefs
	}

	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return DefaultPrefs()
	}
	if prefs.ContextLines < 1 {
		prefs.ContextLines = 1
	}
	if prefs.Theme == "" {
		prefs.Theme = "monokai"
	}
	return prefs
}

// SavePrefs persists preferences to disk.
func SavePrefs(prefs Prefs) error {
	path, err := prefsPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(prefs)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
