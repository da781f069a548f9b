package registry

import "github.com/plucky/plucky/internal/pattern"

var (
	segChar = pattern.Class("", "A-Za-z0-9._-")
	seg     = pattern.Repeat("", segChar, 1, -1)

	// file-name: a path segment with an extension, no separators.
	catFileName = pattern.Guard(pattern.Seq("file-name",
		seg, pattern.Lit("", "."), pattern.Repeat("", alnum, 1, -1),
	), pattern.WordBoundary)

	// dir-name: bare path-segment syntax.
	catDirName = pattern.Guard(pattern.Repeat("dir-name", segChar, 1, -1), pattern.WordBoundary)

	dotPrefix = pattern.Union("", pattern.Lit("", "./"), pattern.Lit("", "../"))

	// relative-unix-path: either a dot-anchored chain, or at least two
	// segments (a single bare segment is a file or dir name, not a path).
	catRelativeUnixPath = pattern.Union("relative-unix-path",
		pattern.Seq("",
			pattern.Repeat("", dotPrefix, 1, -1),
			seg,
			pattern.Repeat("", pattern.Seq("", pattern.Lit("", "/"), seg), 0, -1),
			pattern.Opt(pattern.Lit("", "/")),
		),
		pattern.Seq("",
			seg,
			pattern.Repeat("", pattern.Seq("", pattern.Lit("", "/"), seg), 1, -1),
			pattern.Opt(pattern.Lit("", "/")),
		),
	)

	catAbsoluteUnixPath = pattern.Seq("absolute-unix-path",
		pattern.Repeat("", pattern.Seq("", pattern.Lit("", "/"), seg), 1, -1),
		pattern.Opt(pattern.Lit("", "/")),
	)

	// windows-path: drive-letter anchored, backslash separated.
	catWindowsPath = pattern.Seq("windows-path",
		alpha, pattern.Lit("", ":\\"),
		seg,
		pattern.Repeat("", pattern.Seq("", pattern.Lit("", "\\"), seg), 0, -1),
		pattern.Opt(pattern.Lit("", "\\")),
	)

	catPath = pattern.Union("path", catAbsoluteUnixPath, catWindowsPath, catRelativeUnixPath)
)
