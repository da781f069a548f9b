package engine

import "strings"

// Directory names that never contain sources worth scanning.
var defaultDirExcludes = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	"node_modules": {},
	"vendor":       {},
	".idea":        {},
	".vscode":      {},
	"__pycache__":  {},
	".tox":         {},
	".venv":        {},
	"venv":         {},
	"dist":         {},
	"build":        {},
	"target":       {},
}

// Binary or generated file suffixes skipped when default excludes are on.
var defaultSuffixExcludes = []string{
	".png", ".jpg", ".jpeg", ".gif", ".ico", ".bmp", ".webp", ".svg",
	".woff", ".woff2", ".ttf", ".otf", ".eot",
	".zip", ".tar", ".gz", ".tgz", ".bz2", ".xz", ".7z", ".rar",
	".exe", ".dll", ".so", ".dylib", ".a", ".o", ".bin",
	".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx",
	".mp3", ".mp4", ".avi", ".mov", ".mkv", ".wav", ".flac",
	".pyc", ".pyo", ".class", ".jar", ".war",
	".min.js", ".min.css", ".map",
	".lock",
}

// Exact file names skipped when default excludes are on.
var defaultNameExcludes = map[string]struct{}{
	"package-lock.json": {},
	"yarn.lock":         {},
	"pnpm-lock.yaml":    {},
	"go.sum":            {},
	"cargo.lock":        {},
	"gemfile.lock":      {},
	"poetry.lock":       {},
	"composer.lock":     {},
}

func isDefaultDirExcluded(name string) bool {
	_, ok := defaultDirExcludes[name]
	return ok
}

// isDefaultFileExcluded expects a lowercased relative path.
func isDefaultFileExcluded(lower string) bool {
	base := lower
	if i := strings.LastIndexByte(lower, '/'); i >= 0 {
		base = lower[i+1:]
	}
	if _, ok := defaultNameExcludes[base]; ok {
		return true
	}
	for _, suf := range defaultSuffixExcludes {
		if strings.HasSuffix(base, suf) {
			return true
		}
	}
	return false
}
