package registry

import "github.com/plucky/plucky/internal/pattern"

var (
	anyButNL = pattern.Class("", `^\n`)

	escaped = pattern.Seq("", pattern.Lit("", `\`), anyButNL)

	// Quoted strings stop at the nearest unescaped closing delimiter: the
	// body class excludes both the delimiter and the backslash, and escapes
	// are consumed as two-character units.
	catSingleQuotedString = pattern.Seq("single-quoted-string",
		pattern.Lit("", "'"),
		pattern.Repeat("", pattern.Union("", pattern.Class("", `^'\\\n`), escaped), 0, -1),
		pattern.Lit("", "'"),
	)

	catDoubleQuotedString = pattern.Seq("double-quoted-string",
		pattern.Lit("", `"`),
		pattern.Repeat("", pattern.Union("", pattern.Class("", `^"\\\n`), escaped), 0, -1),
		pattern.Lit("", `"`),
	)

	catString = pattern.Union("string", catSingleQuotedString, catDoubleQuotedString)

	b64Char = pattern.Class("", "A-Za-z0-9+/")
	b64Quad = pattern.Repeat("", b64Char, 4, 4)

	// base64: runs of four-character groups, optionally closed by a padded
	// tail, so the total length stays a multiple of four.
	catBase64 = pattern.Guard(pattern.Seq("base64",
		pattern.Repeat("", b64Quad, 1, -1),
		pattern.Opt(pattern.Union("",
			pattern.Seq("", pattern.Repeat("", b64Char, 2, 2), pattern.Lit("", "==")),
			pattern.Seq("", pattern.Repeat("", b64Char, 3, 3), pattern.Lit("", "=")),
		)),
	), pattern.Base64Boundary)
)
