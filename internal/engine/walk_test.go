package engine

import "testing"

func TestLooksBinary(t *testing.T) {
	if looksBinary([]byte("plain text\nmore text\n")) {
		t.Error("text flagged as binary")
	}
	if !looksBinary([]byte("abc\x00def")) {
		t.Error("NUL content not flagged")
	}
	if looksBinary(nil) {
		t.Error("empty input flagged")
	}
}

func TestLooksNonTextMIME(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"photo.png", true},
		{"clip.mp4", true},
		{"bundle.zip", true},
		{"readme.md", false},
		{"main.go", false},
		{"no-extension", false},
	}
	for _, c := range cases {
		if got := looksNonTextMIME(c.path); got != c.want {
			t.Errorf("looksNonTextMIME(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestAllowedByGlobs(t *testing.T) {
	cases := []struct {
		rel              string
		include, exclude string
		want             bool
	}{
		{"a.txt", "", "", true},
		{"a.txt", "*.txt", "", true},
		{"a.log", "*.txt", "", false},
		{"sub/a.txt", "**/*.txt", "", true},
		{"sub/a.txt", "*.txt", "", true}, // base name also consulted
		{"a.log", "", "*.log", false},
		{"a.txt", "*.txt", "a.*", false}, // exclude wins
	}
	for _, c := range cases {
		cfg := Config{IncludeGlobs: c.include, ExcludeGlobs: c.exclude}
		if got := allowedByGlobs(c.rel, cfg); got != c.want {
			t.Errorf("allowedByGlobs(%q, inc=%q, exc=%q) = %v, want %v",
				c.rel, c.include, c.exclude, got, c.want)
		}
	}
}

func TestDefaultExcludeTables(t *testing.T) {
	if !isDefaultDirExcluded("node_modules") || !isDefaultDirExcluded(".git") {
		t.Error("expected dir exclusion")
	}
	if isDefaultDirExcluded("src") {
		t.Error("src must not be excluded")
	}
	if !isDefaultFileExcluded("sub/package-lock.json") {
		t.Error("lockfile not excluded")
	}
	if !isDefaultFileExcluded("logo.png") {
		t.Error("image suffix not excluded")
	}
	if isDefaultFileExcluded("main.go") {
		t.Error("source file wrongly excluded")
	}
}
