package tui

import "testing"

func TestPrefsRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p := Prefs{ContextLines: 7, Theme: "dracula"}
	if err := SavePrefs(p); err != nil {
		t.Fatal(err)
	}
	got := LoadPrefs()
	if got != p {
		t.Fatalf("got %+v, want %+v", got, p)
	}
}

func TestPrefsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got := LoadPrefs()
	if got != DefaultPrefs() {
		t.Fatalf("got %+v", got)
	}
}

func TestPrefsClamped(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := SavePrefs(Prefs{ContextLines: -4, Theme: ""}); err != nil {
		t.Fatal(err)
	}
	got := LoadPrefs()
	if got.ContextLines != 1 {
		t.Errorf("context lines = %d, want 1", got.ContextLines)
	}
	if got.Theme != "monokai" {
		t.Errorf("theme = %q", got.Theme)
	}
}
